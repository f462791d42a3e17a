package context

import (
	"context"

	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
)

func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, constant.UserIdentityKey, identity)
}

func GetIdentity(ctx context.Context) (*model.Identity, bool) {
	v := ctx.Value(constant.UserIdentityKey)
	if v == nil {
		return nil, false
	}
	identity, ok := v.(*model.Identity)
	return identity, ok && identity != nil
}

func GetUserID(ctx context.Context) (uint64, bool) {
	identity, ok := GetIdentity(ctx)
	if !ok {
		return 0, false
	}
	return identity.UserID, true
}
