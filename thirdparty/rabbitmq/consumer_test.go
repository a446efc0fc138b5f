package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	imagemocks "github.com/muhammadheryan/gg-motors/mocks/repository/image"
	"github.com/muhammadheryan/gg-motors/thirdparty/rabbitmq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleVehicleDeleted(t *testing.T) {
	body, err := json.Marshal(rabbitmq.VehicleDeletedMessage{
		VehicleID: "65f0c0ffee",
		Images:    []string{"/uploads/images-a.jpg", "/uploads/../etc/passwd", "https://cdn.example.com/b.jpg", "/uploads/images-c.png"},
	})
	require.NoError(t, err)

	t.Run("removes only locally served images", func(t *testing.T) {
		images := imagemocks.NewImageRepository(t)
		images.On("Delete", mock.Anything, "images-a.jpg").Return(nil).Once()
		images.On("Delete", mock.Anything, "images-c.png").Return(nil).Once()

		assert.NoError(t, rabbitmq.HandleVehicleDeleted(context.Background(), images, body))
	})

	t.Run("reports failures for requeue", func(t *testing.T) {
		images := imagemocks.NewImageRepository(t)
		images.On("Delete", mock.Anything, "images-a.jpg").Return(errors.New("io error")).Once()
		images.On("Delete", mock.Anything, "images-c.png").Return(nil).Once()

		err := rabbitmq.HandleVehicleDeleted(context.Background(), images, body)
		assert.ErrorContains(t, err, "images-a.jpg")
	})

	t.Run("malformed body is dropped", func(t *testing.T) {
		images := imagemocks.NewImageRepository(t)
		assert.NoError(t, rabbitmq.HandleVehicleDeleted(context.Background(), images, []byte("{not json")))
	})
}
