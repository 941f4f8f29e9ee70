package gormrepo

import (
	"context"
	"testing"

	"gorm.io/gorm"
)

func TestTxFromCtx(t *testing.T) {
	if _, ok := txFromCtx(context.Background()); ok {
		t.Fatalf("plain context must not carry a tx")
	}
	if _, ok := txFromCtx(withTx(context.Background(), nil)); ok {
		t.Fatalf("nil tx must be ignored")
	}
	tx := &gorm.DB{}
	got, ok := txFromCtx(withTx(context.Background(), tx))
	if !ok || got != tx {
		t.Fatalf("expected carried tx, got=%p ok=%v", got, ok)
	}
}

func TestTxManager_JoinsCarriedTx(t *testing.T) {
	tx := &gorm.DB{}
	ctx := withTx(context.Background(), tx)
	called := false
	err := TxManager{}.RunInTx(ctx, func(inner context.Context) error {
		called = true
		if got, _ := txFromCtx(inner); got != tx {
			t.Fatalf("inner ctx lost the outer tx")
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("expected fn to run in the outer tx, err=%v called=%v", err, called)
	}
}
