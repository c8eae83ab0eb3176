package usecase

import "storesetup-backend/model"

// The setup flow walks four ordered steps:
// business -> categories -> products -> marketing.
// Confirmations only ever move progress forward; there is no backward
// transition and the machine itself cannot fail, since it reacts to
// confirmations that already succeeded.

// ApplyConfirmation advances the session for one confirmed action type
// and returns whether anything changed. confirmedProducts is the
// running total including the current confirmation.
func ApplyConfirmation(s *model.SetupSession, actionType model.ActionType, confirmedProducts int) bool {
	changed := false

	setProgress := func(step model.SetupStep, pct int) {
		if s.CurrentStep != step || s.CompletionPercentage != pct {
			s.CurrentStep = step
			s.CompletionPercentage = pct
			changed = true
		}
	}

	switch actionType {
	case model.ActionSuggestCategories:
		if s.CurrentStep == model.StepBusiness {
			setProgress(model.StepCategories, 25)
		}

	case model.ActionPreviewProduct, model.ActionBulkProducts:
		if s.CurrentStep == model.StepCategories {
			setProgress(model.StepProducts, 50)
		}
		// Three confirmed products force the marketing step. This fires
		// independently of the theme-driven jump; last writer wins.
		if confirmedProducts >= 3 {
			setProgress(model.StepMarketing, 75)
		}

	case model.ActionSuggestThemes:
		// Forced jump regardless of the current step.
		setProgress(model.StepMarketing, 75)

	case model.ActionGenerateLogo:
		if s.CompletionPercentage != 88 {
			s.CompletionPercentage = 88
			changed = true
		}

	case model.ActionGenerateLandingPage:
		if s.CompletionPercentage != 95 {
			s.CompletionPercentage = 95
			changed = true
		}
	}

	if s.ConfirmedProducts != confirmedProducts {
		s.ConfirmedProducts = confirmedProducts
		changed = true
	}
	return changed
}
