package vehicle_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	appvehicle "github.com/muhammadheryan/gg-motors/application/vehicle"
	"github.com/muhammadheryan/gg-motors/constant"
	imagemocks "github.com/muhammadheryan/gg-motors/mocks/repository/image"
	vehiclemocks "github.com/muhammadheryan/gg-motors/mocks/repository/vehicle"
	rabbitmocks "github.com/muhammadheryan/gg-motors/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/gg-motors/model"
	"github.com/muhammadheryan/gg-motors/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func assertErrorType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%s), want %s", ce.ErrorCode(), ce.Error(), constant.ErrorTypeCode[want])
	}
}

func validForm() *model.VehicleForm {
	return &model.VehicleForm{
		Title: "Toyota Corolla 2019",
		Brand: "Toyota",
		Model: "Corolla",
		Price: "15000",
		Year:  "2019",
	}
}

func TestVehicleApp_CreateVehicle(t *testing.T) {
	seller := model.Identity{UserID: primitive.NewObjectID(), Role: constant.RoleUser}
	images := []model.ImageUpload{
		{FileName: "Front.JPG", ContentType: "image/jpeg", Data: []byte("front")},
		{FileName: "back.png", ContentType: "image/png", Data: []byte("back")},
	}

	type fields struct {
		vehicleRepo *vehiclemocks.VehicleRepository
		imageRepo   *imagemocks.ImageRepository
	}
	tests := []struct {
		name     string
		form     *model.VehicleForm
		images   []model.ImageUpload
		mockCall func(f fields)
		check    func(t *testing.T, got *model.Vehicle)
		wantErr  bool
		errCode  constant.ErrorType
		errField string
	}{
		{
			name:   "success: images stored and seller forced to caller",
			form:   validForm(),
			images: images,
			mockCall: func(f fields) {
				f.imageRepo.
					On("Save", mock.Anything, mock.MatchedBy(func(name string) bool {
						return strings.HasPrefix(name, "images-") && strings.HasSuffix(name, ".jpg")
					}), []byte("front"), "image/jpeg").
					Return(nil).
					Once()
				f.imageRepo.
					On("Save", mock.Anything, mock.MatchedBy(func(name string) bool {
						return strings.HasPrefix(name, "images-") && strings.HasSuffix(name, ".png")
					}), []byte("back"), "image/png").
					Return(nil).
					Once()
				f.vehicleRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(v *model.Vehicle) bool {
						return v.SellerID == seller.UserID &&
							v.Price == 15000 &&
							v.Year != nil && *v.Year == 2019 &&
							v.Condition == constant.VehicleConditionDefault &&
							v.Category == constant.VehicleCategoryDefault &&
							len(v.Images) == 2 &&
							!v.CreatedAt.IsZero() &&
							!v.UpdatedAt.Before(v.CreatedAt)
					})).
					Return(func(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
						v.ID = primitive.NewObjectID()
						return v, nil
					}).
					Once()
			},
			check: func(t *testing.T, got *model.Vehicle) {
				require.Len(t, got.Images, 2)
				for _, url := range got.Images {
					assert.True(t, strings.HasPrefix(url, "/uploads/images-"), url)
				}
				assert.Equal(t, seller.UserID, got.SellerID)
			},
		},
		{
			name: "success: no images yields empty list",
			form: validForm(),
			mockCall: func(f fields) {
				f.vehicleRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).
					Return(func(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
						return v, nil
					}).
					Once()
			},
			check: func(t *testing.T, got *model.Vehicle) {
				assert.NotNil(t, got.Images)
				assert.Empty(t, got.Images)
			},
		},
		{
			name:     "error: missing title",
			form:     &model.VehicleForm{Brand: "Toyota", Model: "Corolla", Price: "1"},
			wantErr:  true,
			errCode:  constant.ErrMissingFields,
			errField: "title",
		},
		{
			name: "error: negative price",
			form: func() *model.VehicleForm {
				f := validForm()
				f.Price = "-5"
				return f
			}(),
			wantErr:  true,
			errCode:  constant.ErrValidation,
			errField: "price",
		},
		{
			name: "error: price not a number",
			form: func() *model.VehicleForm {
				f := validForm()
				f.Price = "cheap"
				return f
			}(),
			wantErr:  true,
			errCode:  constant.ErrValidation,
			errField: "price",
		},
		{
			name: "success: extension follows the validated image type",
			form: validForm(),
			images: []model.ImageUpload{
				{FileName: "x.html", ContentType: "image/png", Data: []byte("<script>")},
			},
			mockCall: func(f fields) {
				f.imageRepo.
					On("Save", mock.Anything, mock.MatchedBy(func(name string) bool {
						return strings.HasPrefix(name, "images-") && strings.HasSuffix(name, ".png")
					}), []byte("<script>"), "image/png").
					Return(nil).
					Once()
				f.vehicleRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).
					Return(func(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) { return v, nil }).
					Once()
			},
			check: func(t *testing.T, got *model.Vehicle) {
				require.Len(t, got.Images, 1)
				assert.True(t, strings.HasSuffix(got.Images[0], ".png"), got.Images[0])
			},
		},
		{
			name: "error: infinite price",
			form: func() *model.VehicleForm {
				f := validForm()
				f.Price = "Inf"
				return f
			}(),
			wantErr:  true,
			errCode:  constant.ErrValidation,
			errField: "price",
		},
		{
			name: "error: explicit zero year",
			form: func() *model.VehicleForm {
				f := validForm()
				f.Year = "0"
				return f
			}(),
			wantErr:  true,
			errCode:  constant.ErrValidation,
			errField: "year",
		},
		{
			name: "error: year out of range",
			form: func() *model.VehicleForm {
				f := validForm()
				f.Year = "1850"
				return f
			}(),
			wantErr:  true,
			errCode:  constant.ErrValidation,
			errField: "year",
		},
		{
			name: "error: unknown category",
			form: func() *model.VehicleForm {
				f := validForm()
				f.Category = "boats"
				return f
			}(),
			wantErr:  true,
			errCode:  constant.ErrValidation,
			errField: "category",
		},
		{
			name:   "error: second image fails, first removed",
			form:   validForm(),
			images: images,
			mockCall: func(f fields) {
				var first string
				f.imageRepo.
					On("Save", mock.Anything, mock.AnythingOfType("string"), []byte("front"), "image/jpeg").
					Run(func(args mock.Arguments) { first = args.String(1) }).
					Return(nil).
					Once()
				f.imageRepo.
					On("Save", mock.Anything, mock.AnythingOfType("string"), []byte("back"), "image/png").
					Return(errors.New("disk full")).
					Once()
				f.imageRepo.
					On("Delete", mock.Anything, mock.MatchedBy(func(name string) bool { return name == first })).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:   "error: insert fails, stored images removed",
			form:   validForm(),
			images: images,
			mockCall: func(f fields) {
				f.imageRepo.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).Return(nil).Twice()
				f.vehicleRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).
					Return(nil, errors.New("db error")).
					Once()
				f.imageRepo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil).Twice()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				vehicleRepo: vehiclemocks.NewVehicleRepository(t),
				imageRepo:   imagemocks.NewImageRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appvehicle.NewVehicleApp(f.vehicleRepo, f.imageRepo, nil)

			got, err := app.CreateVehicle(context.Background(), seller, tt.form, tt.images)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateVehicle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errCode)
				if tt.errField != "" {
					ce, _ := cerr.As(err)
					fields := make([]string, 0, len(ce.Details()))
					for _, d := range ce.Details() {
						fields = append(fields, d.Field)
					}
					assert.Contains(t, fields, tt.errField)
				}
				return
			}
			tt.check(t, got)
		})
	}
}

func TestVehicleApp_GetVehicle(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("error: malformed id is not found", func(t *testing.T) {
		app := appvehicle.NewVehicleApp(vehiclemocks.NewVehicleRepository(t), imagemocks.NewImageRepository(t), nil)
		_, err := app.GetVehicle(context.Background(), "not-an-id")
		assertErrorType(t, err, constant.ErrVehicleNotFound)
	})

	t.Run("error: unknown id", func(t *testing.T) {
		repo := vehiclemocks.NewVehicleRepository(t)
		repo.On("GetDetail", mock.Anything, id).Return(nil, nil).Once()

		app := appvehicle.NewVehicleApp(repo, imagemocks.NewImageRepository(t), nil)
		_, err := app.GetVehicle(context.Background(), id.Hex())
		assertErrorType(t, err, constant.ErrVehicleNotFound)
	})

	t.Run("success", func(t *testing.T) {
		detail := &model.VehicleDetail{Vehicle: model.Vehicle{ID: id, Title: "Civic"}}
		repo := vehiclemocks.NewVehicleRepository(t)
		repo.On("GetDetail", mock.Anything, id).Return(detail, nil).Once()

		app := appvehicle.NewVehicleApp(repo, imagemocks.NewImageRepository(t), nil)
		got, err := app.GetVehicle(context.Background(), id.Hex())
		require.NoError(t, err)
		assert.Equal(t, detail, got)
	})
}

func TestVehicleApp_UpdateVehicle(t *testing.T) {
	owner := model.Identity{UserID: primitive.NewObjectID(), Role: constant.RoleUser}
	stranger := model.Identity{UserID: primitive.NewObjectID(), Role: constant.RoleUser}
	admin := model.Identity{UserID: primitive.NewObjectID(), Role: constant.RoleAdmin}

	existing := func() *model.Vehicle {
		v := &model.Vehicle{
			ID:        primitive.NewObjectID(),
			Title:     "Civic",
			Price:     9000,
			Condition: "used",
			Category:  "cars",
			SellerID:  owner.UserID,
			Images:    []string{"/uploads/images-front.jpg", "/uploads/images-back.png"},
		}
		return v
	}
	newPrice := 8500.0
	badPrice := -1.0
	zeroYear := 0
	checkPrice := func(t *testing.T, got *model.Vehicle) {
		assert.Equal(t, newPrice, got.Price)
		assert.Equal(t, owner.UserID, got.SellerID)
	}

	tests := []struct {
		name      string
		identity  model.Identity
		req       *model.UpdateVehicleRequest
		mockCall  func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle)
		imageCall func(images *imagemocks.ImageRepository)
		check     func(t *testing.T, got *model.Vehicle)
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:     "success: owner updates price",
			identity: owner,
			req:      &model.UpdateVehicleRequest{Price: &newPrice},
			mockCall: func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle) {
				repo.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
				repo.
					On("Update", mock.Anything, mock.MatchedBy(func(u *model.Vehicle) bool {
						return u.Price == newPrice && u.SellerID == owner.UserID && !u.UpdatedAt.IsZero()
					})).
					Return(func(ctx context.Context, u *model.Vehicle) (*model.Vehicle, error) { return u, nil }).
					Once()
			},
			check: checkPrice,
		},
		{
			name:     "success: admin may update any vehicle",
			identity: admin,
			req:      &model.UpdateVehicleRequest{Price: &newPrice},
			mockCall: func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle) {
				repo.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
				repo.
					On("Update", mock.Anything, mock.AnythingOfType("*model.Vehicle")).
					Return(func(ctx context.Context, u *model.Vehicle) (*model.Vehicle, error) { return u, nil }).
					Once()
			},
			check: checkPrice,
		},
		{
			name:     "error: stranger is forbidden",
			identity: stranger,
			req:      &model.UpdateVehicleRequest{Price: &newPrice},
			mockCall: func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle) {
				repo.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:     "error: negative price rejected",
			identity: owner,
			req:      &model.UpdateVehicleRequest{Price: &badPrice},
			mockCall: func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle) {
				repo.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:     "success: dropped image is removed from storage",
			identity: owner,
			req:      &model.UpdateVehicleRequest{Images: &[]string{"/uploads/images-back.png"}},
			mockCall: func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle) {
				repo.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
				repo.
					On("Update", mock.Anything, mock.AnythingOfType("*model.Vehicle")).
					Return(func(ctx context.Context, u *model.Vehicle) (*model.Vehicle, error) { return u, nil }).
					Once()
			},
			imageCall: func(images *imagemocks.ImageRepository) {
				images.On("Delete", mock.Anything, "images-front.jpg").Return(nil).Once()
			},
			check: func(t *testing.T, got *model.Vehicle) {
				assert.Equal(t, []string{"/uploads/images-back.png"}, got.Images)
			},
		},
		{
			name:     "error: image of another vehicle rejected",
			identity: owner,
			req:      &model.UpdateVehicleRequest{Images: &[]string{"/uploads/images-front.jpg", "/uploads/images-victim.png"}},
			mockCall: func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle) {
				repo.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:     "error: explicit zero year rejected",
			identity: owner,
			req:      &model.UpdateVehicleRequest{Year: &zeroYear},
			mockCall: func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle) {
				repo.On("GetByID", mock.Anything, v.ID).Return(v, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:     "error: vehicle vanished",
			identity: owner,
			req:      &model.UpdateVehicleRequest{Price: &newPrice},
			mockCall: func(repo *vehiclemocks.VehicleRepository, v *model.Vehicle) {
				repo.On("GetByID", mock.Anything, v.ID).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVehicleNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			v := existing()
			repo := vehiclemocks.NewVehicleRepository(t)
			images := imagemocks.NewImageRepository(t)
			tt.mockCall(repo, v)
			if tt.imageCall != nil {
				tt.imageCall(images)
			}
			app := appvehicle.NewVehicleApp(repo, images, nil)

			got, err := app.UpdateVehicle(context.Background(), tt.identity, v.ID.Hex(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateVehicle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errCode)
				return
			}
			tt.check(t, got)
		})
	}
}

func TestVehicleApp_DeleteVehicle(t *testing.T) {
	owner := model.Identity{UserID: primitive.NewObjectID(), Role: constant.RoleUser}
	vehicle := &model.Vehicle{
		ID:       primitive.NewObjectID(),
		SellerID: owner.UserID,
		Images:   []string{"/uploads/images-a.jpg", "/uploads/images-b.png", "https://elsewhere.example/x.jpg"},
	}

	t.Run("success: cleanup handed to worker", func(t *testing.T) {
		repo := vehiclemocks.NewVehicleRepository(t)
		publisher := rabbitmocks.NewEventPublisher(t)
		repo.On("GetByID", mock.Anything, vehicle.ID).Return(vehicle, nil).Once()
		repo.On("Delete", mock.Anything, vehicle.ID).Return(vehicle, nil).Once()
		publisher.
			On("PublishVehicleDeleted", mock.Anything, mock.MatchedBy(func(msg rabbitmq.VehicleDeletedMessage) bool {
				return msg.VehicleID == vehicle.ID.Hex() && len(msg.Images) == 3
			})).
			Return(nil).
			Once()

		app := appvehicle.NewVehicleApp(repo, imagemocks.NewImageRepository(t), publisher)
		require.NoError(t, app.DeleteVehicle(context.Background(), owner, vehicle.ID.Hex()))
	})

	t.Run("success: publish failure falls back to inline removal", func(t *testing.T) {
		repo := vehiclemocks.NewVehicleRepository(t)
		images := imagemocks.NewImageRepository(t)
		publisher := rabbitmocks.NewEventPublisher(t)
		repo.On("GetByID", mock.Anything, vehicle.ID).Return(vehicle, nil).Once()
		repo.On("Delete", mock.Anything, vehicle.ID).Return(vehicle, nil).Once()
		publisher.On("PublishVehicleDeleted", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
		images.On("Delete", mock.Anything, "images-a.jpg").Return(nil).Once()
		images.On("Delete", mock.Anything, "images-b.png").Return(nil).Once()

		app := appvehicle.NewVehicleApp(repo, images, publisher)
		require.NoError(t, app.DeleteVehicle(context.Background(), owner, vehicle.ID.Hex()))
	})

	t.Run("success: no publisher removes inline", func(t *testing.T) {
		repo := vehiclemocks.NewVehicleRepository(t)
		images := imagemocks.NewImageRepository(t)
		repo.On("GetByID", mock.Anything, vehicle.ID).Return(vehicle, nil).Once()
		repo.On("Delete", mock.Anything, vehicle.ID).Return(vehicle, nil).Once()
		images.On("Delete", mock.Anything, "images-a.jpg").Return(nil).Once()
		images.On("Delete", mock.Anything, "images-b.png").Return(errors.New("permission denied")).Once()

		app := appvehicle.NewVehicleApp(repo, images, nil)
		require.NoError(t, app.DeleteVehicle(context.Background(), owner, vehicle.ID.Hex()))
	})

	t.Run("error: stranger is forbidden", func(t *testing.T) {
		repo := vehiclemocks.NewVehicleRepository(t)
		repo.On("GetByID", mock.Anything, vehicle.ID).Return(vehicle, nil).Once()

		app := appvehicle.NewVehicleApp(repo, imagemocks.NewImageRepository(t), nil)
		err := app.DeleteVehicle(context.Background(), model.Identity{UserID: primitive.NewObjectID()}, vehicle.ID.Hex())
		assertErrorType(t, err, constant.ErrForbidden)
	})

	t.Run("error: already deleted", func(t *testing.T) {
		repo := vehiclemocks.NewVehicleRepository(t)
		repo.On("GetByID", mock.Anything, vehicle.ID).Return(vehicle, nil).Once()
		repo.On("Delete", mock.Anything, vehicle.ID).Return(nil, nil).Once()

		app := appvehicle.NewVehicleApp(repo, imagemocks.NewImageRepository(t), nil)
		err := app.DeleteVehicle(context.Background(), owner, vehicle.ID.Hex())
		assertErrorType(t, err, constant.ErrVehicleNotFound)
	})
}

func TestVehicleApp_ListVehicles(t *testing.T) {
	minPrice, maxPrice := 1000.0, 2000.0
	filter := &model.VehicleFilter{Category: "cars", MinPrice: &minPrice, MaxPrice: &maxPrice}

	repo := vehiclemocks.NewVehicleRepository(t)
	repo.On("List", mock.Anything, filter).Return([]model.VehicleDetail{{Vehicle: model.Vehicle{Price: 1500}}}, nil).Once()

	app := appvehicle.NewVehicleApp(repo, imagemocks.NewImageRepository(t), nil)
	got, err := app.ListVehicles(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	failing := vehiclemocks.NewVehicleRepository(t)
	failing.On("List", mock.Anything, filter).Return(nil, errors.New("db error")).Once()
	_, err = appvehicle.NewVehicleApp(failing, imagemocks.NewImageRepository(t), nil).ListVehicles(context.Background(), filter)
	assertErrorType(t, err, constant.ErrInternal)
}
