package entities

type Step string

const (
	StepDetail    Step = "detail"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
	StepShare     Step = "share"
	StepClosed    Step = "closed"
)

// HasConfirmation reports whether the step may only be reached once an
// OrderConfirmation is attached to the session.
func (s Step) HasConfirmation() bool {
	return s == StepConfirmed || s == StepShare
}

type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformInstagram Platform = "instagram"
)

func Platforms() []Platform {
	return []Platform{PlatformTwitter, PlatformFacebook, PlatformLinkedIn, PlatformWhatsApp, PlatformInstagram}
}

func (p Platform) Valid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}
