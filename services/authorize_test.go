package services

import (
	"testing"

	"github.com/Handsol/nbc-final-project/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	owner := &models.Session{UserID: "user-1"}
	stranger := &models.Session{UserID: "user-2"}
	empty := &models.Session{}

	tests := []struct {
		name    string
		session *models.Session
		action  Action
		wantErr error
	}{
		{"anonymous read", nil, ActionRead, nil},
		{"stranger read", stranger, ActionRead, nil},
		{"owner mutate", owner, ActionMutate, nil},
		{"owner delete", owner, ActionDelete, nil},
		{"stranger mutate", stranger, ActionMutate, ErrForbidden},
		{"stranger delete", stranger, ActionDelete, ErrForbidden},
		{"anonymous mutate", nil, ActionMutate, ErrForbidden},
		{"anonymous delete", nil, ActionDelete, ErrForbidden},
		{"session without identity mutate", empty, ActionMutate, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.session, "user-1", tt.action)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
