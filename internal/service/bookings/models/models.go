package models

import (
	"strconv"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// Request модели

// ListBookingsRequest фильтр списка бронирований для сотрудников
type ListBookingsRequest struct {
	Status     *string `json:"status,omitempty"`
	LocationID *int64  `json:"locationId,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	filter := domain.BookingFilter{LocationID: r.LocationID}
	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// Response модели

// SlotInfo слот бронирования
type SlotInfo struct {
	ID        int64     `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Date      string    `json:"date"`      // "2025-03-01"
	StartTime string    `json:"startTime"` // "10:00"
	EndTime   string    `json:"endTime"`   // "11:00"
}

// LocationInfo площадка бронирования
type LocationInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	ProjectStage string `json:"projectStage,omitempty"`
	Sector       string `json:"sector,omitempty"`
	Description  string `json:"description,omitempty"`
	Needs        string `json:"needs,omitempty"`

	// Только для владельца токена
	CancelToken string `json:"cancelToken,omitempty"`

	Slot     SlotInfo     `json:"slot"`
	Location LocationInfo `json:"location"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardResponse сводка для панели сотрудников
type DashboardResponse struct {
	Locations int            `json:"locations"`
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"byStatus"`
}

// ExportHeader заголовок выгрузки
var ExportHeader = []string{
	"ID", "Agence", "Début", "Fin", "Nom", "Prénom", "Email", "Téléphone",
	"Ville", "Code postal", "Stade du projet", "Secteur", "Description", "Besoins",
	"Statut", "Date de création",
}

// ExportRow строка выгрузки: бронирование вместе со слотом и площадкой
type ExportRow struct {
	ID           int64
	Location     string
	SlotStart    time.Time
	SlotEnd      time.Time
	Name         string
	Surname      string
	Email        string
	Phone        string
	City         string
	PostalCode   string
	ProjectStage string
	Sector       string
	Description  string
	Needs        string
	Status       string
	CreatedAt    time.Time
}

// Record значения строки в порядке ExportHeader
func (r ExportRow) Record() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Location,
		r.SlotStart.Format(domain.DateTimeFormat),
		r.SlotEnd.Format(domain.DateTimeFormat),
		r.Name,
		r.Surname,
		r.Email,
		r.Phone,
		r.City,
		r.PostalCode,
		r.ProjectStage,
		r.Sector,
		r.Description,
		r.Needs,
		r.Status,
		r.CreatedAt.Format(domain.DateTimeFormat),
	}
}

// Методы конвертации

// FromDomainDetails конвертирует domain модель в DTO, время переводится в loc
func FromDomainDetails(d *domain.BookingDetails, loc *time.Location) *BookingResponse {
	if d == nil {
		return nil
	}
	b := d.Booking
	start := d.Slot.Start.In(loc)
	end := d.Slot.End.In(loc)

	return &BookingResponse{
		ID:           b.ID,
		Status:       string(b.Status),
		Name:         b.Name,
		Surname:      b.Surname,
		Email:        b.Email,
		Phone:        b.Phone,
		City:         b.City,
		PostalCode:   b.PostalCode,
		ProjectStage: b.ProjectStage,
		Sector:       b.Sector,
		Description:  b.Description,
		Needs:        b.Needs,
		CancelToken:  b.CancelToken,
		Slot: SlotInfo{
			ID:        d.Slot.ID,
			Start:     start,
			End:       end,
			Date:      start.Format(domain.DateFormat),
			StartTime: start.Format(domain.TimeFormat),
			EndTime:   end.Format(domain.TimeFormat),
		},
		Location: LocationInfo{
			ID:   d.Location.ID,
			Name: d.Location.Name,
			City: d.Location.City,
		},
		CreatedAt: b.CreatedAt.In(loc),
		UpdatedAt: b.UpdatedAt.In(loc),
	}
}

// ToExportRow конвертирует domain модель в строку выгрузки
func ToExportRow(d *domain.BookingDetails, loc *time.Location) ExportRow {
	b := d.Booking
	return ExportRow{
		ID:           b.ID,
		Location:     d.Location.Name,
		SlotStart:    d.Slot.Start.In(loc),
		SlotEnd:      d.Slot.End.In(loc),
		Name:         b.Name,
		Surname:      b.Surname,
		Email:        b.Email,
		Phone:        b.Phone,
		City:         b.City,
		PostalCode:   b.PostalCode,
		ProjectStage: b.ProjectStage,
		Sector:       b.Sector,
		Description:  b.Description,
		Needs:        b.Needs,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.In(loc),
	}
}
