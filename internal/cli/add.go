package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/armanazij/mygp-survey/internal/common"
	"github.com/armanazij/mygp-survey/internal/models"
	"github.com/armanazij/mygp-survey/internal/services"
)

// Add collects one survey response interactively and submits it.
//
// Duplicate phone numbers abort before anything is stored; a failed remote
// push is reported as a warning only, since the entry is already cached
// locally at that point.
func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "নাম (ঐচ্ছিক)", a.out)
	if err != nil {
		return err
	}
	phoneNumber, err := GetSimpleText(a.reader, "ফোন নম্বর", a.out)
	if err != nil {
		return err
	}
	profession, err := GetChoice(a.reader, "পেশা", a.config.Professions, a.out)
	if err != nil {
		return err
	}
	usesMyGP, err := GetYesNo(a.reader, "MyGP ব্যবহার করেন?", a.out)
	if err != nil {
		return err
	}

	sub := services.Submission{
		Name:        name,
		PhoneNumber: phoneNumber,
		Profession:  profession,
		UseMyGP:     models.UseNo,
	}
	if usesMyGP {
		sub.UseMyGP = models.UseYes
		reasons := []string{a.config.Reasons.MBData, a.config.Reasons.SocialAd, a.config.Reasons.Both}
		sub.Reason, err = GetChoice(a.reader, "ব্যবহারের কারণ", reasons, a.out)
		if err != nil {
			return err
		}
	}

	_, err = a.service.Submit(ctx, sub)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, msgSubmitOK)
	case errors.Is(err, common.ErrDuplicateEntry):
		fmt.Fprintln(a.out, msgDuplicatePhone)
	case errors.Is(err, common.ErrInvalidSubmission):
		fmt.Fprintf(a.out, "%v\n", err)
	case errors.Is(err, common.ErrPartialSubmit):
		// The entry is safe in the local cache; warn and move on.
		fmt.Fprintln(a.out, msgPartialSubmit)
		return nil
	default:
		fmt.Fprintf(a.out, "%v\n", err)
	}
	return err
}
