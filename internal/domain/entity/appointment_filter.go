package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Term string // Substring of doctor name, patient name, or dd/mm/yyyy date
}
