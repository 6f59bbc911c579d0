// Package onboarding models the linear onboarding wizard: an ordered set of
// steps, a cursor over them, and the profile collected along the way.
//
// The wizard is surface-agnostic. The web service and the terminal program
// both drive the same Wizard and render its State however they like.
package onboarding
