package account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

// Profile prefills the edit form
type Profile struct {
	Name    string
	Mobile1 string
	Mobile2 string
}

// Modify is the profile edit page
type Modify struct {
	api MemberAPI
}

// NewModify creates Modify
func NewModify(api MemberAPI) *Modify {
	return &Modify{api: api}
}

// Unlock checks the current password and loads the profile. A failed
// profile load still unlocks the form, just without prefilled values.
func (m *Modify) Unlock(ctx context.Context, id, pass string) (Profile, error) {
	if strings.TrimSpace(pass) == "" {
		return Profile{}, pageerrors.ErrPasswordRequired
	}

	res, err := m.api.IsPass(ctx, id, pass)
	if err != nil {
		utils.Error("account: password check failed", map[string]any{"member_id": id, "error": err.Error()})
		return Profile{}, fmt.Errorf("account: password check: %w", err)
	}
	if !res.Success || !dataTrue(res.Data) {
		msg := res.Message
		if msg == "" {
			msg = pageerrors.ErrPasswordMismatch.Error()
		}
		return Profile{}, pageerrors.NewBusinessError(http.StatusOK, msg)
	}

	info, err := m.api.MemberInfo(ctx, id)
	if err != nil || !info.Success {
		fields := map[string]any{"member_id": id}
		if err != nil {
			fields["error"] = err.Error()
		}
		utils.Warn("account: profile load failed", fields)
		return Profile{}, nil
	}

	var member models.Member
	if err := json.Unmarshal(info.Data, &member); err != nil {
		utils.Warn("account: profile not decodable", map[string]any{"member_id": id, "error": err.Error()})
		return Profile{}, nil
	}
	return profileOf(member), nil
}

// profileOf splits the phone into the 3-digit prefix and the rest
func profileOf(m models.Member) Profile {
	p := Profile{Name: m.Name}
	if len(m.Phone) >= 10 {
		p.Mobile1 = m.Phone[:3]
		p.Mobile2 = m.Phone[3:]
	}
	return p
}
