// Package routepath centralizes web route patterns and builders.
package routepath

import "net/url"

const (
	Root   = "/"
	Health = "/up"
	Static = "/static/"

	Start  = "/start"
	Signup = "/signup"

	OnboardingPrefix        = "/onboarding/"
	OnboardingFields        = "/onboarding/fields"
	OnboardingNext          = "/onboarding/next"
	OnboardingBack          = "/onboarding/back"
	OnboardingGoalToggle    = "/onboarding/goals/toggle"
	OnboardingExperience    = "/onboarding/experience"
	OnboardingOAuthPattern  = "/onboarding/account/oauth/{provider}"
	OnboardingAccountEmail  = "/onboarding/account/email"
	onboardingOAuthTemplate = "/onboarding/account/oauth/"

	// Landing page anchors.
	AnchorCourses      = "#courses"
	AnchorTestimonials = "#testimonials"
	AnchorSignup       = "#signup"
)

// OnboardingOAuth returns the delegation route for one provider.
func OnboardingOAuth(provider string) string {
	return onboardingOAuthTemplate + url.PathEscape(provider)
}
