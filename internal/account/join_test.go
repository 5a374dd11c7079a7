package account

import (
	"context"
	"encoding/json"
	"testing"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestJoin_CheckIDAndValidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := NewMockMemberAPI(ctrl)
	join := NewJoin(mockAPI)
	st := NewJoinState()

	form := JoinForm{ID: "newbie", Zipcode: "04524", Pass1: "pw12", Pass2: "pw12"}
	require.ErrorIs(t, join.Validate(st, form), pageerrors.ErrIDNotChecked)

	mockAPI.EXPECT().IDCheck(gomock.Any(), "newbie").
		Return(models.MemberResult{Success: true, Data: json.RawMessage(`true`)}, nil)
	msg, err := join.CheckID(context.Background(), st, " newbie ")
	require.NoError(t, err)
	require.Equal(t, "사용 가능한 아이디입니다.", msg)
	require.NoError(t, join.Validate(st, form))

	// editing the id drops the check
	st.SetID("newbie2")
	require.ErrorIs(t, join.Validate(st, JoinForm{ID: "newbie2", Zipcode: "04524"}), pageerrors.ErrIDNotChecked)
}

func TestJoin_CheckID_Taken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := NewMockMemberAPI(ctrl)
	mockAPI.EXPECT().IDCheck(gomock.Any(), "hong").
		Return(models.MemberResult{Success: true, Data: json.RawMessage(`false`)}, nil)

	st := NewJoinState()
	_, err := NewJoin(mockAPI).CheckID(context.Background(), st, "hong")
	require.Error(t, err)
	require.Equal(t, "이미 사용 중인 아이디입니다.", Message(err, MsgIDCheckError))
	require.False(t, st.Checked("hong"))
}

func TestJoin_CheckID_Blank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewJoin(NewMockMemberAPI(ctrl)).CheckID(context.Background(), NewJoinState(), "  ")
	require.ErrorIs(t, err, pageerrors.ErrIDRequired)
}

func TestJoin_Validate(t *testing.T) {
	st := NewJoinState()
	st.markChecked("hong", true)
	join := NewJoin(nil)

	tests := []struct {
		name    string
		form    JoinForm
		wantErr error
	}{
		{name: "ok", form: JoinForm{ID: "hong", Zipcode: "04524", Pass1: "a", Pass2: "a"}},
		{name: "blank_zipcode", form: JoinForm{ID: "hong", Zipcode: "  ", Pass1: "a", Pass2: "a"}, wantErr: pageerrors.ErrZipcodeRequired},
		{name: "zipcode_before_id_check", form: JoinForm{ID: "kim", Pass1: "a", Pass2: "b"}, wantErr: pageerrors.ErrZipcodeRequired},
		{name: "unchecked_id", form: JoinForm{ID: "kim", Zipcode: "04524", Pass1: "a", Pass2: "a"}, wantErr: pageerrors.ErrIDNotChecked},
		{name: "password_mismatch", form: JoinForm{ID: "hong", Zipcode: "04524", Pass1: "a", Pass2: "b"}, wantErr: pageerrors.ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := join.Validate(st, tt.form)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
