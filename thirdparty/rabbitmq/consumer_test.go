package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	body, err := json.Marshal(&model.Notification{
		Kind:    constant.NotificationEnquiry,
		Enquiry: &model.Contact{ID: 4, Subject: "Office layout"},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		body    []byte
		handle  HandlerFunc
		wantErr bool
	}{
		{
			name: "decoded and handled",
			body: body,
			handle: func(_ context.Context, n *model.Notification) error {
				assert.Equal(t, constant.NotificationEnquiry, n.Kind)
				assert.Equal(t, "Office layout", n.Enquiry.Subject)
				return nil
			},
		},
		{
			name:    "malformed body",
			body:    []byte("{not json"),
			handle:  func(context.Context, *model.Notification) error { return nil },
			wantErr: true,
		},
		{
			name:    "handler failure",
			body:    body,
			handle:  func(context.Context, *model.Notification) error { return errors.New("smtp down") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := process(context.Background(), tt.body, tt.handle)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
