package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
	bookingRepo "github.com/m04kA/incubator-booking/internal/infra/storage/booking"
	"github.com/m04kA/incubator-booking/internal/service/bookings/models"
)

// Service сервис чтения бронирований: подтверждение по токену, список и выгрузка для сотрудников
type Service struct {
	bookingRepo  BookingRepository
	locationRepo LocationRepository
	timezone     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	locationRepo LocationRepository,
	timezone *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		locationRepo: locationRepo,
		timezone:     timezone,
		logger:       logger,
	}
}

// ToResponse конвертирует бронирование в ответ в часовом поясе сервиса
func (s *Service) ToResponse(details *domain.BookingDetails) *models.BookingResponse {
	return models.FromDomainDetails(details, s.timezone)
}

// GetByToken получает бронирование по токену отмены
func (s *Service) GetByToken(ctx context.Context, token string) (*models.BookingResponse, error) {
	details, err := s.bookingRepo.GetDetailsByCancelToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByToken: unknown cancel token")
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByToken - repository error: %v", ErrInternal, err)
	}
	return s.ToResponse(details), nil
}

// GetByID получает бронирование по ID (для сотрудников, без токена)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	details, err := s.bookingRepo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := s.ToResponse(details)
	resp.CancelToken = ""
	return resp, nil
}

// List возвращает бронирования, новые первыми
// Токены отмены в список не попадают
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.bookingRepo.ListDetails(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{Bookings: make([]models.BookingResponse, 0, len(list))}
	for _, d := range list {
		item := s.ToResponse(d)
		item.CancelToken = ""
		resp.Bookings = append(resp.Bookings, *item)
	}
	return resp, nil
}

// Dashboard количество площадок и бронирований по статусам
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	counts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count bookings: %v", ErrInternal, err)
	}

	locations, err := s.locationRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to count locations: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count locations: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		Locations: locations,
		ByStatus:  make(map[string]int, len(domain.AllStatuses)),
	}
	for _, status := range domain.AllStatuses {
		resp.ByStatus[string(status)] = counts[status]
		resp.Total += counts[status]
	}
	return resp, nil
}

// Export все бронирования для выгрузки, по одной строке на бронирование
func (s *Service) Export(ctx context.Context) ([]models.ExportRow, error) {
	list, err := s.bookingRepo.ListDetails(ctx, domain.BookingFilter{})
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return nil, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	rows := make([]models.ExportRow, 0, len(list))
	for _, d := range list {
		rows = append(rows, models.ToExportRow(d, s.timezone))
	}

	s.logger.Info("Export: %d bookings exported", len(rows))
	return rows, nil
}
