package handlers

import (
	userRepoPkg "groomly/database/repository/user"
	"groomly/services/appointment"
	"groomly/services/availability"
	"groomly/services/booking"
	"groomly/services/catalog"
	"groomly/services/notification"
	"groomly/services/pet"
	"groomly/services/stylist"
	"groomly/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, wired from
// the service layer once at startup.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth and profile
	RegisterHandler      gin.HandlerFunc
	SignInHandler        gin.HandlerFunc
	SignOutHandler       gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Pets
	CreatePetHandler gin.HandlerFunc
	ListPetsHandler  gin.HandlerFunc
	GetPetHandler    gin.HandlerFunc
	UpdatePetHandler gin.HandlerFunc
	DeletePetHandler gin.HandlerFunc

	// Catalog
	ListServicesHandler       gin.HandlerFunc
	GetServiceHandler         gin.HandlerFunc
	CreateServiceHandler      gin.HandlerFunc
	UpdateServiceHandler      gin.HandlerFunc
	SetServiceActiveHandler   gin.HandlerFunc
	UploadServiceImageHandler gin.HandlerFunc

	// Stylists and schedules
	ListStylistsHandler       gin.HandlerFunc
	CreateScheduleRuleHandler gin.HandlerFunc
	ListScheduleRulesHandler  gin.HandlerFunc
	UpdateScheduleRuleHandler gin.HandlerFunc
	DeleteScheduleRuleHandler gin.HandlerFunc

	// Availability
	GetAvailabilityHandler gin.HandlerFunc
	GetDayOverviewHandler  gin.HandlerFunc

	// Booking wizard
	StartBookingSessionHandler  gin.HandlerFunc
	GetBookingSessionHandler    gin.HandlerFunc
	SelectBookingPetHandler     gin.HandlerFunc
	SelectBookingServiceHandler gin.HandlerFunc
	SelectBookingStylistHandler gin.HandlerFunc
	SetBookingDateHandler       gin.HandlerFunc
	SelectBookingSlotHandler    gin.HandlerFunc
	SetBookingNotesHandler      gin.HandlerFunc
	AdvanceBookingHandler       gin.HandlerFunc
	BackBookingHandler          gin.HandlerFunc
	ConfirmBookingHandler       gin.HandlerFunc
	CancelBookingSessionHandler gin.HandlerFunc

	// Appointments
	ListAppointmentsHandler    gin.HandlerFunc
	GetAppointmentHandler      gin.HandlerFunc
	DayViewHandler             gin.HandlerFunc
	ConfirmAppointmentHandler  gin.HandlerFunc
	CancelAppointmentHandler   gin.HandlerFunc
	CompleteAppointmentHandler gin.HandlerFunc
	NoShowAppointmentHandler   gin.HandlerFunc

	// Notifications
	ListNotificationsHandler        gin.HandlerFunc
	UnreadCountHandler              gin.HandlerFunc
	MarkNotificationReadHandler     gin.HandlerFunc
	MarkAllNotificationsReadHandler gin.HandlerFunc
}

// Services collects the service-layer dependencies for the bundle.
type Services struct {
	UserRepo        userRepoPkg.UserRepository
	UserSvc         user.UserService
	PetSvc          pet.PetService
	CatalogSvc      catalog.CatalogService
	ScheduleSvc     stylist.ScheduleService
	AvailabilitySvc availability.Service
	BookingSvc      booking.BookingSessionService
	AppointmentSvc  appointment.AppointmentService
	NotificationSvc notification.NotificationService
}

// NewHandlerBundle wires every handler from its service.
func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: s.UserRepo,

		RegisterHandler:      RegisterHandler(s.UserSvc),
		SignInHandler:        SignInHandler(s.UserSvc),
		SignOutHandler:       SignOutHandler(s.UserSvc),
		GetProfileHandler:    GetProfileHandler(s.UserSvc),
		UpdateProfileHandler: UpdateProfileHandler(s.UserSvc),

		CreatePetHandler: CreatePetHandler(s.PetSvc),
		ListPetsHandler:  ListPetsHandler(s.PetSvc),
		GetPetHandler:    GetPetHandler(s.PetSvc),
		UpdatePetHandler: UpdatePetHandler(s.PetSvc),
		DeletePetHandler: DeletePetHandler(s.PetSvc),

		ListServicesHandler:       ListServicesHandler(s.CatalogSvc),
		GetServiceHandler:         GetServiceHandler(s.CatalogSvc),
		CreateServiceHandler:      CreateServiceHandler(s.CatalogSvc),
		UpdateServiceHandler:      UpdateServiceHandler(s.CatalogSvc),
		SetServiceActiveHandler:   SetServiceActiveHandler(s.CatalogSvc),
		UploadServiceImageHandler: UploadServiceImageHandler(s.CatalogSvc),

		ListStylistsHandler:       ListStylistsHandler(s.UserSvc),
		CreateScheduleRuleHandler: CreateScheduleRuleHandler(s.ScheduleSvc),
		ListScheduleRulesHandler:  ListScheduleRulesHandler(s.ScheduleSvc),
		UpdateScheduleRuleHandler: UpdateScheduleRuleHandler(s.ScheduleSvc),
		DeleteScheduleRuleHandler: DeleteScheduleRuleHandler(s.ScheduleSvc),

		GetAvailabilityHandler: GetAvailabilityHandler(s.AvailabilitySvc),
		GetDayOverviewHandler:  GetDayOverviewHandler(s.AvailabilitySvc),

		StartBookingSessionHandler:  StartBookingSessionHandler(s.BookingSvc),
		GetBookingSessionHandler:    GetBookingSessionHandler(s.BookingSvc),
		SelectBookingPetHandler:     SelectBookingPetHandler(s.BookingSvc),
		SelectBookingServiceHandler: SelectBookingServiceHandler(s.BookingSvc),
		SelectBookingStylistHandler: SelectBookingStylistHandler(s.BookingSvc),
		SetBookingDateHandler:       SetBookingDateHandler(s.BookingSvc),
		SelectBookingSlotHandler:    SelectBookingSlotHandler(s.BookingSvc),
		SetBookingNotesHandler:      SetBookingNotesHandler(s.BookingSvc),
		AdvanceBookingHandler:       AdvanceBookingHandler(s.BookingSvc),
		BackBookingHandler:          BackBookingHandler(s.BookingSvc),
		ConfirmBookingHandler:       ConfirmBookingHandler(s.BookingSvc),
		CancelBookingSessionHandler: CancelBookingSessionHandler(s.BookingSvc),

		ListAppointmentsHandler:    ListAppointmentsHandler(s.AppointmentSvc),
		GetAppointmentHandler:      GetAppointmentHandler(s.AppointmentSvc),
		DayViewHandler:             DayViewHandler(s.AppointmentSvc),
		ConfirmAppointmentHandler:  ConfirmAppointmentHandler(s.AppointmentSvc),
		CancelAppointmentHandler:   CancelAppointmentHandler(s.AppointmentSvc),
		CompleteAppointmentHandler: CompleteAppointmentHandler(s.AppointmentSvc),
		NoShowAppointmentHandler:   NoShowAppointmentHandler(s.AppointmentSvc),

		ListNotificationsHandler:        ListNotificationsHandler(s.NotificationSvc),
		UnreadCountHandler:              UnreadCountHandler(s.NotificationSvc),
		MarkNotificationReadHandler:     MarkNotificationReadHandler(s.NotificationSvc),
		MarkAllNotificationsReadHandler: MarkAllNotificationsReadHandler(s.NotificationSvc),
	}
}
