// Package account holds the member pages: id and password recovery, the
// sign-up id check and the profile edit unlock.
package account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"auction-web/internal/backend"
	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

//go:generate mockgen -source=recovery.go -destination=mock_recovery.go -package=account

// MemberAPI is the member backend
type MemberAPI interface {
	FindID(ctx context.Context, name, mobile1, mobile2 string) (models.MemberResult, error)
	FindPassword(ctx context.Context, id, name, mobile1, mobile2 string) (models.MemberResult, error)
	ResetPassword(ctx context.Context, id, newPassword string) (models.MemberResult, error)
	IDCheck(ctx context.Context, id string) (models.MemberResult, error)
	IsPass(ctx context.Context, id, pass string) (models.MemberResult, error)
	MemberInfo(ctx context.Context, id string) (models.MemberResult, error)
}

// Fallback texts for transport failures
const (
	MsgServerError    = "서버 오류가 발생했습니다."
	MsgIDCheckError   = "중복체크 중 오류가 발생했습니다."
	MsgPassCheckError = "비밀번호 확인 중 오류가 발생했습니다."
)

const msgPasswordChanged = "비밀번호가 성공적으로 변경되었습니다.\n로그인 페이지로 이동합니다."

// Recovery is the find-id and find-password pages
type Recovery struct {
	api MemberAPI
}

// NewRecovery creates Recovery
func NewRecovery(api MemberAPI) *Recovery {
	return &Recovery{api: api}
}

// FindID returns the member id registered to name and mobile number
func (r *Recovery) FindID(ctx context.Context, form FindIDForm) (string, error) {
	form.normalise()
	if err := checkRequired(form); err != nil {
		return "", err
	}

	res, err := r.api.FindID(ctx, form.Name, form.Mobile1, form.Mobile2)
	if err != nil {
		utils.Error("account: find id failed", map[string]any{"error": err.Error()})
		return "", fmt.Errorf("account: find id: %w", err)
	}
	if !res.Success {
		return "", pageerrors.NewBusinessError(http.StatusOK, res.Message)
	}
	return dataString(res.Data), nil
}

// Verify checks the member's identity. Success remembers the id in st; any
// failure forgets whatever was verified before.
func (r *Recovery) Verify(ctx context.Context, st *RecoveryState, form FindPasswordForm) error {
	form.normalise()
	if err := checkRequired(form); err != nil {
		return err
	}

	res, err := r.api.FindPassword(ctx, form.ID, form.Name, form.Mobile1, form.Mobile2)
	if err != nil {
		st.set("")
		utils.Error("account: verify failed", map[string]any{"member_id": form.ID, "error": err.Error()})
		return fmt.Errorf("account: verify: %w", err)
	}
	if !res.Success {
		st.set("")
		utils.Info("account: verification rejected", map[string]any{"member_id": form.ID})
		return pageerrors.NewBusinessError(http.StatusOK, res.Message)
	}

	st.set(form.ID)
	utils.Info("account: member verified", map[string]any{"member_id": form.ID})
	return nil
}

// Reset sets the new password for the verified id and returns the login page
// to go to.
func (r *Recovery) Reset(ctx context.Context, st *RecoveryState, form ResetForm) (string, error) {
	form.ID = strings.TrimSpace(form.ID)
	if !st.Matches(form.ID) {
		utils.Warn("account: reset for unverified id", map[string]any{
			"member_id":   form.ID,
			"verified_id": st.VerifiedID(),
		})
		return "", pageerrors.ErrNotVerified
	}
	if err := checkReset(form); err != nil {
		return "", err
	}

	res, err := r.api.ResetPassword(ctx, form.ID, form.NewPassword)
	if err != nil {
		utils.Error("account: reset failed", map[string]any{"member_id": form.ID, "error": err.Error()})
		return "", fmt.Errorf("account: reset: %w", err)
	}
	if !res.Success {
		return "", pageerrors.NewBusinessError(http.StatusOK, res.Message)
	}

	st.set("")
	utils.Info("account: password reset", map[string]any{"member_id": form.ID})
	return backend.PathLogin, nil
}

// PasswordChangedMessage is the alert shown before leaving for the login page
func PasswordChangedMessage() string {
	return msgPasswordChanged
}

// Message is the text shown for err; fallback covers transport failures
// that carry nothing better.
func Message(err error, fallback string) string {
	return pageerrors.UserMessage(err, fallback)
}

// dataString reads data as a JSON string, else as raw text
func dataString(data json.RawMessage) string {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(data))
}

func dataTrue(data json.RawMessage) bool {
	var b bool
	return json.Unmarshal(data, &b) == nil && b
}
