package account

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestRecovery_FindID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := NewMockMemberAPI(ctrl)
	recovery := NewRecovery(mockAPI)

	tests := []struct {
		name      string
		form      FindIDForm
		mockSetup func()
		want      string
		wantErr   error
		wantMsg   string
	}{
		{
			name: "found",
			form: FindIDForm{Name: " 홍길동 ", Mobile1: "010", Mobile2: "1234-5678"},
			mockSetup: func() {
				mockAPI.EXPECT().FindID(gomock.Any(), "홍길동", "010", "12345678").
					Return(models.MemberResult{Success: true, Data: json.RawMessage(`"hong"`)}, nil)
			},
			want: "hong",
		},
		{
			name:      "missing_fields",
			form:      FindIDForm{Name: "홍길동", Mobile1: "010", Mobile2: "abc"},
			mockSetup: func() {},
			wantErr:   pageerrors.ErrMissingFields,
			wantMsg:   "모든 항목을 입력해주세요.",
		},
		{
			name: "not_found",
			form: FindIDForm{Name: "홍길동", Mobile1: "010", Mobile2: "1"},
			mockSetup: func() {
				mockAPI.EXPECT().FindID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.MemberResult{Success: false, Message: "일치하는 회원이 없습니다."}, nil)
			},
			wantMsg: "일치하는 회원이 없습니다.",
		},
		{
			name: "server_down",
			form: FindIDForm{Name: "홍길동", Mobile1: "010", Mobile2: "1"},
			mockSetup: func() {
				mockAPI.EXPECT().FindID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.MemberResult{}, pageerrors.NewTransportError(http.StatusBadGateway, "", nil))
			},
			wantMsg: MsgServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			got, err := recovery.FindID(context.Background(), tt.form)

			if tt.wantMsg == "" {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			require.Equal(t, tt.wantMsg, Message(err, MsgServerError))
		})
	}
}

func TestRecovery_VerifyThenReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := NewMockMemberAPI(ctrl)
	recovery := NewRecovery(mockAPI)
	st := NewRecoveryState()

	// reset before verification is refused without a call
	_, err := recovery.Reset(context.Background(), st, ResetForm{ID: "hong", NewPassword: "abcd", ConfirmPassword: "abcd"})
	require.ErrorIs(t, err, pageerrors.ErrNotVerified)

	mockAPI.EXPECT().FindPassword(gomock.Any(), "hong", "홍길동", "010", "12345678").
		Return(models.MemberResult{Success: true}, nil)
	require.NoError(t, recovery.Verify(context.Background(), st, FindPasswordForm{ID: "hong", Name: "홍길동", Mobile1: "010", Mobile2: "12345678"}))
	require.Equal(t, "hong", st.VerifiedID())

	// a different id is refused
	_, err = recovery.Reset(context.Background(), st, ResetForm{ID: "kim", NewPassword: "abcd", ConfirmPassword: "abcd"})
	require.ErrorIs(t, err, pageerrors.ErrNotVerified)

	mockAPI.EXPECT().ResetPassword(gomock.Any(), "hong", "abcd").Return(models.MemberResult{Success: true}, nil)
	target, err := recovery.Reset(context.Background(), st, ResetForm{ID: "hong", NewPassword: "abcd", ConfirmPassword: "abcd"})
	require.NoError(t, err)
	require.Equal(t, "/memberLogin", target)
	require.Empty(t, st.VerifiedID())
}

func TestRecovery_VerifyFailureClearsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := NewMockMemberAPI(ctrl)
	recovery := NewRecovery(mockAPI)
	st := NewRecoveryState()

	form := FindPasswordForm{ID: "hong", Name: "홍길동", Mobile1: "010", Mobile2: "1"}
	gomock.InOrder(
		mockAPI.EXPECT().FindPassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.MemberResult{Success: true}, nil),
		mockAPI.EXPECT().FindPassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.MemberResult{Success: false, Message: "회원 정보가 일치하지 않습니다."}, nil),
	)

	require.NoError(t, recovery.Verify(context.Background(), st, form))
	require.Equal(t, "hong", st.VerifiedID())

	err := recovery.Verify(context.Background(), st, form)
	require.Error(t, err)
	require.Equal(t, "회원 정보가 일치하지 않습니다.", Message(err, MsgServerError))
	require.Empty(t, st.VerifiedID())
}

func TestRecovery_ResetValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recovery := NewRecovery(NewMockMemberAPI(ctrl))
	st := NewRecoveryState()
	st.set("hong")

	tests := []struct {
		name    string
		newPass string
		confirm string
		wantErr error
	}{
		{name: "both_blank", wantErr: pageerrors.ErrPasswordRequired},
		{name: "confirm_blank", newPass: "abcd", wantErr: pageerrors.ErrPasswordRequired},
		{name: "mismatch", newPass: "abcd", confirm: "abce", wantErr: pageerrors.ErrPasswordMismatch},
		{name: "mismatch_before_length", newPass: "abc", confirm: "abd", wantErr: pageerrors.ErrPasswordMismatch},
		{name: "too_short", newPass: "abc", confirm: "abc", wantErr: pageerrors.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recovery.Reset(context.Background(), st, ResetForm{ID: "hong", NewPassword: tt.newPass, ConfirmPassword: tt.confirm})
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, "hong", st.VerifiedID())
		})
	}
}

func TestRecovery_ResetRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := NewMockMemberAPI(ctrl)
	mockAPI.EXPECT().ResetPassword(gomock.Any(), "hong", "abcd").
		Return(models.MemberResult{Success: false, Message: "이전 비밀번호와 같습니다."}, nil)

	st := NewRecoveryState()
	st.set("hong")

	_, err := NewRecovery(mockAPI).Reset(context.Background(), st, ResetForm{ID: "hong", NewPassword: "abcd", ConfirmPassword: "abcd"})
	require.Error(t, err)
	require.Equal(t, "이전 비밀번호와 같습니다.", Message(err, MsgServerError))
	require.Equal(t, "hong", st.VerifiedID())
}
