// Package modules assembles the default web module set.
package modules

import (
	"time"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	module "github.com/empowereconomy/empower/internal/services/web/module"
	"github.com/empowereconomy/empower/internal/services/web/modules/landing"
	onboardingmodule "github.com/empowereconomy/empower/internal/services/web/modules/onboarding"
	"github.com/empowereconomy/empower/internal/services/web/session"
)

// Dependencies are shared by every module.
type Dependencies struct {
	Sessions  *session.Manager
	Delegator identity.Delegator
	Accounts  identity.AccountCreator
	Variant   onboarding.Variant
	Providers []identity.Provider
	Content   landing.Content
	Now       func() time.Time
}

// Default returns the landing and onboarding modules sharing one session manager.
func Default(deps Dependencies) []module.Module {
	wizard := onboardingmodule.New(onboardingmodule.Config{
		Sessions:  deps.Sessions,
		Delegator: deps.Delegator,
		Accounts:  deps.Accounts,
		Variant:   deps.Variant,
		Providers: deps.Providers,
	})
	return []module.Module{
		landing.New(landing.Config{
			Sessions: deps.Sessions,
			Wizard:   wizard,
			Content:  deps.Content,
			Now:      deps.Now,
		}),
		wizard,
	}
}
