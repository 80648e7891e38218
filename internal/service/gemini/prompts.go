package gemini

import (
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"
)

const plainTextOnly = "Please provide only the message text itself, without any subject line, greeting, or extra commentary."

// MessagePrompt renders the text model instruction for a kudos suggestion.
func MessagePrompt(p entities.MessagePrompt) string {
	if p.Seed == "" {
		return fmt.Sprintf("Write a short, friendly, and professional kudos message from %s to %s to recognize their great work. %s",
			p.SenderName, p.ReceiverName, plainTextOnly)
	}
	return fmt.Sprintf("Write a short, friendly, and professional kudos message from %s to %s, inspired by these keywords: %q. %s",
		p.SenderName, p.ReceiverName, p.Seed, plainTextOnly)
}

func roleVisuals(r entities.Role) string {
	switch r {
	case entities.RoleTeamLead:
		return "incorporate themes of leadership, guidance, and teamwork, like a compass, a guiding star, or a strong tree with branches."
	case entities.RoleHR:
		return "incorporate themes of support, growth, and community, like helping hands, a flourishing plant, or interconnected gears."
	default:
		return "incorporate themes of collaboration, innovation, and dedication, like puzzle pieces coming together, a bright lightbulb, or climbing a mountain."
	}
}

// ImagePrompt renders the image model instruction for a recognition certificate.
func ImagePrompt(p entities.ImagePrompt) string {
	role := p.Receiver.Role
	if !role.Valid() {
		role = entities.RoleEmployee
	}
	return fmt.Sprintf(
		"Create a visually stunning digital art illustration for an employee recognition award certificate. "+
			"It must clearly display: \"Awarded To: %s\", \"Awarded By: %s\", \"Date: %s\", and the core message: %q. "+
			"The visual theme should be inspired by the message and the recipient's role as a %s. For a %s, %s "+
			"The style should be professional and celebratory, with text artistically integrated into the design.",
		p.Receiver.Name, p.SenderName, p.Date.Format("January 2, 2006"), p.Message,
		role, role, roleVisuals(role),
	)
}
