package service

import (
	"fmt"

	"github.com/petsparadise/petsparadise/internal/model"
	"github.com/petsparadise/petsparadise/internal/notify"
)

// statusChangeMessage builds the email for a status transition. The
// second return value is false when the transition carries no
// notification (anything other than Approved or Adopted).
func statusChangeMessage(pet *model.Pet, status model.PetStatus) (notify.Message, bool) {
	switch status {
	case model.PetStatusAdopted:
		return adoptionApprovedMessage(pet), true
	case model.PetStatusApproved:
		return listingApprovedMessage(pet), true
	default:
		return notify.Message{}, false
	}
}

func adoptionApprovedMessage(pet *model.Pet) notify.Message {
	phoneHTML := "your registered phone number"
	phoneText := ""
	if pet.Phone != "" {
		phoneHTML = "<strong>" + pet.Phone + "</strong>"
		phoneText = " at " + pet.Phone
	}

	return notify.Message{
		To:      pet.Email,
		Subject: fmt.Sprintf("Great news! Your adoption request for %s is approved", pet.Name),
		Text: fmt.Sprintf(`Hi there,

We're excited to let you know that your adoption request for %s has been approved.
Our team will reach out soon%s to coordinate the next steps.

Thank you for giving %s a loving home!

— Pet's Paradise Team`, pet.Name, phoneText, pet.Name),
		HTML: fmt.Sprintf(`<p>Hi there,</p>
<p>We're excited to let you know that your adoption request for <strong>%s</strong> has been approved.</p>
<p>Our team will reach out soon at %s to coordinate the next steps.</p>
<p>Thank you for giving %s a loving home!</p>
<p>— Pet's Paradise Team</p>`, pet.Name, phoneHTML, pet.Name),
	}
}

func listingApprovedMessage(pet *model.Pet) notify.Message {
	phoneHTML := "your registered phone number"
	phoneText := ""
	if pet.Phone != "" {
		phoneHTML = "<strong>" + pet.Phone + "</strong>"
		phoneText = " at " + pet.Phone
	}

	return notify.Message{
		To:      pet.Email,
		Subject: fmt.Sprintf("Your pet listing for %s has been approved", pet.Name),
		Text: fmt.Sprintf(`Hi there,

Your request to list %s for adoption on Pet's Paradise has been approved.
We will get in touch with you%s if we need any additional details.

Thank you for helping us find a forever home for %s.

— Pet's Paradise Team`, pet.Name, phoneText, pet.Name),
		HTML: fmt.Sprintf(`<p>Hi there,</p>
<p>Your request to list <strong>%s</strong> for adoption on Pet's Paradise has been approved.</p>
<p>We will get in touch with you at %s if we need any additional details.</p>
<p>Thank you for helping us find a forever home for %s.</p>
<p>— Pet's Paradise Team</p>`, pet.Name, phoneHTML, pet.Name),
	}
}
