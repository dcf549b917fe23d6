package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/infra/persistence/postgres"
	"hokhau/internal/usecase"
)

func newTestFeedbackService(t *testing.T) usecase.FeedbackUsecase {
	t.Helper()

	db := openTestDB(t)
	return NewFeedbackService(FeedbackServiceParams{
		FeedbackRepo: postgres.NewFeedbackRepository(db),
	})
}

func TestFeedbackService_SubmitAndList(t *testing.T) {
	svc := newTestFeedbackService(t)
	ctx := context.Background()

	sender := citizenActor(10, nil)
	other := citizenActor(11, nil)

	submitted, err := svc.Submit(ctx, sender, &usecase.SubmitFeedbackInput{
		TieuDe:  "Đèn đường hỏng",
		NoiDung: "Đèn đầu ngõ 12 Tràng Thi không sáng ba hôm nay",
		TheLoai: "ve_sinh",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackPending, submitted.Status)
	assert.Equal(t, sender.ID, submitted.NguoiGuiID)

	_, err = svc.Submit(ctx, other, &usecase.SubmitFeedbackInput{
		TieuDe:  "Tiếng ồn ban đêm",
		NoiDung: "Công trình thi công sau 22h",
	})
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, sender)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, submitted.ID, mine[0].ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFeedbackService_Respond(t *testing.T) {
	svc := newTestFeedbackService(t)
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, citizenActor(10, nil), &usecase.SubmitFeedbackInput{
		TieuDe:  "Đèn đường hỏng",
		NoiDung: "Đèn đầu ngõ 12 Tràng Thi không sáng",
	})
	require.NoError(t, err)

	reviewer := reviewerActor()

	t.Run("acknowledge moves to processing", func(t *testing.T) {
		updated, err := svc.Respond(ctx, reviewer, submitted.ID, &usecase.RespondFeedbackInput{
			TraLoi: "Đã chuyển đơn vị điện lực xử lý",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.FeedbackProcessing, updated.Status)
		assert.Equal(t, "Đã chuyển đơn vị điện lực xử lý", updated.TraLoi)
		require.NotNil(t, updated.NguoiTraLoiID)
		assert.Equal(t, reviewer.ID, *updated.NguoiTraLoiID)
		assert.NotNil(t, updated.TraLoiLuc)
	})

	t.Run("resolve closes the entry", func(t *testing.T) {
		updated, err := svc.Respond(ctx, reviewer, submitted.ID, &usecase.RespondFeedbackInput{
			TraLoi:   "Đèn đã được thay, phản ánh được đóng",
			Resolved: true,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.FeedbackResolved, updated.Status)
	})

	t.Run("unknown entry", func(t *testing.T) {
		_, err := svc.Respond(ctx, reviewer, 9999, &usecase.RespondFeedbackInput{TraLoi: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrFeedbackNotFound)
	})
}
