package config

// SenderIdentity is the set of From addresses used for outgoing mail in one environment.
type SenderIdentity struct {
	Confirmation string
	Notification string
	Diagnostic   string
}

// sandboxSenders is used by every environment without its own entry.
var sandboxSenders = SenderIdentity{
	Confirmation: "Cloux Team <onboarding@resend.dev>",
	Notification: "Cloux Notifications <onboarding@resend.dev>",
	Diagnostic:   "Cloux Test <onboarding@resend.dev>",
}

var senderDirectory = map[string]SenderIdentity{
	EnvProduction: {
		Confirmation: "Cloux Team <hello@cloux.co>",
		Notification: "Cloux Notifications <notifications@cloux.co>",
		Diagnostic:   "Cloux Test <hello@cloux.co>",
	},
	EnvDevelopment: sandboxSenders,
}

// LookupSenders returns the sender identity for environment, falling back to the sandbox senders.
func LookupSenders(environment string) SenderIdentity {
	if s, ok := senderDirectory[environment]; ok {
		return s
	}
	return sandboxSenders
}
