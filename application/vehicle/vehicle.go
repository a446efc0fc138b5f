package vehicle

import (
	"context"
	"time"

	"github.com/muhammadheryan/gg-motors/constant"
	"github.com/muhammadheryan/gg-motors/model"
	imagerepo "github.com/muhammadheryan/gg-motors/repository/image"
	vehiclerepo "github.com/muhammadheryan/gg-motors/repository/vehicle"
	"github.com/muhammadheryan/gg-motors/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type VehicleApp interface {
	ListVehicles(ctx context.Context, filter *model.VehicleFilter) ([]model.VehicleDetail, error)
	GetVehicle(ctx context.Context, id string) (*model.VehicleDetail, error)
	CreateVehicle(ctx context.Context, identity model.Identity, form *model.VehicleForm, images []model.ImageUpload) (*model.Vehicle, error)
	UpdateVehicle(ctx context.Context, identity model.Identity, id string, req *model.UpdateVehicleRequest) (*model.Vehicle, error)
	DeleteVehicle(ctx context.Context, identity model.Identity, id string) error
}

type vehicleAppImpl struct {
	vehicleRepo vehiclerepo.VehicleRepository
	imageRepo   imagerepo.ImageRepository
	publisher   rabbitmq.EventPublisher
	now         func() time.Time
}

// NewVehicleApp wires the vehicle use cases. publisher may be nil, in which
// case images of deleted vehicles are removed inline.
func NewVehicleApp(vehicleRepo vehiclerepo.VehicleRepository, imageRepo imagerepo.ImageRepository, publisher rabbitmq.EventPublisher) VehicleApp {
	return &vehicleAppImpl{
		vehicleRepo: vehicleRepo,
		imageRepo:   imageRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *vehicleAppImpl) ListVehicles(ctx context.Context, filter *model.VehicleFilter) ([]model.VehicleDetail, error) {
	items, err := s.vehicleRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListVehicles] err vehicleRepo.List", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	return items, nil
}

func (s *vehicleAppImpl) GetVehicle(ctx context.Context, id string) (*model.VehicleDetail, error) {
	vehicleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cerr.SetCustomError(constant.ErrVehicleNotFound)
	}

	detail, err := s.vehicleRepo.GetDetail(ctx, vehicleID)
	if err != nil {
		logger.Error("[GetVehicle] err vehicleRepo.GetDetail", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	if detail == nil {
		return nil, cerr.SetCustomError(constant.ErrVehicleNotFound)
	}
	return detail, nil
}

func (s *vehicleAppImpl) CreateVehicle(ctx context.Context, identity model.Identity, form *model.VehicleForm, images []model.ImageUpload) (*model.Vehicle, error) {
	if missing := form.MissingFields(); len(missing) > 0 {
		return nil, cerr.SetCustomError(constant.ErrMissingFields).WithDetails(missing...)
	}

	vehicle, parseErrs := form.ToVehicle()
	// the seller is always the caller, whatever the form said
	vehicle.SellerID = identity.UserID
	vehicle.Normalize()
	if errs := cerr.MergeFieldErrors(parseErrs, vehicle.Validate()); len(errs) > 0 {
		return nil, cerr.SetCustomError(constant.ErrValidation).WithDetails(errs...)
	}

	names, err := s.storeImages(ctx, images)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		vehicle.Images = append(vehicle.Images, imagerepo.URL(name))
	}

	vehicle.Touch(s.now())
	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		logger.Error("[CreateVehicle] err vehicleRepo.Create", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		s.removeImages(ctx, names)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}

	logger.Info("[CreateVehicle] vehicle created", logger.WithContext(ctx,
		zap.String("vehicle_id", created.ID.Hex()),
		zap.String("seller_id", created.SellerID.Hex()),
		zap.Int("images", len(created.Images)))...)

	return created, nil
}

// storeImages saves every upload or none of them.
func (s *vehicleAppImpl) storeImages(ctx context.Context, images []model.ImageUpload) ([]string, error) {
	names := make([]string, 0, len(images))
	for _, img := range images {
		name := imagerepo.GenerateName(constant.ImageFieldName, img.FileName, img.ContentType)
		if err := s.imageRepo.Save(ctx, name, img.Data, img.ContentType); err != nil {
			logger.Error("[CreateVehicle] err imageRepo.Save", logger.WithContext(ctx,
				zap.String("error", err.Error()),
				zap.String("file", name))...)
			s.removeImages(ctx, names)
			return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
		}
		names = append(names, name)
	}

	if len(names) > 0 {
		logger.Info("[CreateVehicle] images stored", logger.WithContext(ctx,
			zap.Int("count", len(names)),
			zap.Strings("files", names))...)
	}
	return names, nil
}

func (s *vehicleAppImpl) removeImages(ctx context.Context, names []string) {
	for _, name := range names {
		if err := s.imageRepo.Delete(ctx, name); err != nil {
			logger.Warn("[removeImages] err imageRepo.Delete", logger.WithContext(ctx,
				zap.String("error", err.Error()),
				zap.String("file", name))...)
		}
	}
}

// loadOwned fetches a vehicle the caller is allowed to modify.
func (s *vehicleAppImpl) loadOwned(ctx context.Context, identity model.Identity, id string, op string) (*model.Vehicle, error) {
	vehicleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cerr.SetCustomError(constant.ErrVehicleNotFound)
	}

	existing, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		logger.Error("["+op+"] err vehicleRepo.GetByID", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	if existing == nil {
		return nil, cerr.SetCustomError(constant.ErrVehicleNotFound)
	}
	if !identity.CanModify(existing.SellerID) {
		logger.Warn("["+op+"] caller does not own vehicle", logger.WithContext(ctx,
			zap.String("vehicle_id", existing.ID.Hex()),
			zap.String("caller_id", identity.UserID.Hex()))...)
		return nil, cerr.SetCustomError(constant.ErrForbidden)
	}
	return existing, nil
}

func (s *vehicleAppImpl) UpdateVehicle(ctx context.Context, identity model.Identity, id string, req *model.UpdateVehicleRequest) (*model.Vehicle, error) {
	vehicle, err := s.loadOwned(ctx, identity, id, "UpdateVehicle")
	if err != nil {
		return nil, err
	}

	if errs := req.ImageErrors(vehicle.Images); len(errs) > 0 {
		return nil, cerr.SetCustomError(constant.ErrValidation).WithDetails(errs...)
	}
	previousImages := append([]string{}, vehicle.Images...)

	req.Apply(vehicle)
	vehicle.Normalize()
	if errs := vehicle.Validate(); len(errs) > 0 {
		return nil, cerr.SetCustomError(constant.ErrValidation).WithDetails(errs...)
	}

	vehicle.Touch(s.now())
	updated, err := s.vehicleRepo.Update(ctx, vehicle)
	if err != nil {
		logger.Error("[UpdateVehicle] err vehicleRepo.Update", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	if updated == nil {
		return nil, cerr.SetCustomError(constant.ErrVehicleNotFound)
	}

	s.removeImages(ctx, imageNames(model.RemovedImages(previousImages, updated.Images)))
	return updated, nil
}

func (s *vehicleAppImpl) DeleteVehicle(ctx context.Context, identity model.Identity, id string) error {
	vehicle, err := s.loadOwned(ctx, identity, id, "DeleteVehicle")
	if err != nil {
		return err
	}

	deleted, err := s.vehicleRepo.Delete(ctx, vehicle.ID)
	if err != nil {
		logger.Error("[DeleteVehicle] err vehicleRepo.Delete", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	if deleted == nil {
		return cerr.SetCustomError(constant.ErrVehicleNotFound)
	}

	s.cleanupImages(ctx, deleted)
	return nil
}

// cleanupImages hands the images of a deleted vehicle to the cleanup worker,
// falling back to removing them inline.
func (s *vehicleAppImpl) cleanupImages(ctx context.Context, vehicle *model.Vehicle) {
	if len(vehicle.Images) == 0 {
		return
	}

	if s.publisher != nil {
		err := s.publisher.PublishVehicleDeleted(ctx, rabbitmq.VehicleDeletedMessage{
			VehicleID: vehicle.ID.Hex(),
			SellerID:  vehicle.SellerID.Hex(),
			Images:    vehicle.Images,
			DeletedAt: s.now().UTC(),
		})
		if err == nil {
			return
		}
		logger.Error("[DeleteVehicle] err publisher.PublishVehicleDeleted", logger.WithContext(ctx, zap.String("error", err.Error()))...)
	}

	s.removeImages(ctx, imageNames(vehicle.Images))
}

// imageNames keeps the urls that point at our own upload store.
func imageNames(urls []string) []string {
	names := make([]string, 0, len(urls))
	for _, url := range urls {
		if name, ok := imagerepo.NameFromURL(url); ok {
			names = append(names, name)
		}
	}
	return names
}
