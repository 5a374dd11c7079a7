package account

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

const (
	msgIDAvailable = "사용 가능한 아이디입니다."
	msgIDTaken     = "이미 사용 중인 아이디입니다."
)

// Join is the sign-up page
type Join struct {
	api MemberAPI
}

// NewJoin creates Join
func NewJoin(api MemberAPI) *Join {
	return &Join{api: api}
}

// CheckID runs the duplicate check for id and records the outcome in st.
// The returned text is the server's confirmation.
func (j *Join) CheckID(ctx context.Context, st *JoinState, id string) (string, error) {
	id = strings.TrimSpace(id)
	st.SetID(id)
	if id == "" {
		return "", pageerrors.ErrIDRequired
	}

	res, err := j.api.IDCheck(ctx, id)
	if err != nil {
		utils.Error("account: id check failed", map[string]any{"member_id": id, "error": err.Error()})
		return "", fmt.Errorf("account: id check: %w", err)
	}

	if !res.Success || !dataTrue(res.Data) {
		st.markChecked(id, false)
		msg := res.Message
		if msg == "" {
			msg = msgIDTaken
		}
		return "", pageerrors.NewBusinessError(http.StatusOK, msg)
	}

	st.markChecked(id, true)
	if res.Message != "" {
		return res.Message, nil
	}
	return msgIDAvailable, nil
}

// Validate is the sign-up submit gate: zipcode, a checked id, then matching
// passwords.
func (j *Join) Validate(st *JoinState, form JoinForm) error {
	form.Zipcode = strings.TrimSpace(form.Zipcode)

	tags := failedTags(validate.Struct(form))
	if tags["Zipcode"] != "" {
		return pageerrors.ErrZipcodeRequired
	}
	if !st.Checked(form.ID) {
		return pageerrors.ErrIDNotChecked
	}
	if tags["Pass2"] != "" {
		return pageerrors.ErrPasswordMismatch
	}
	return nil
}
