package tui

import "github.com/MKhiriev/go-uaa/models"

type submitResultMsg struct {
	update models.CompositeSolutionUpdate
	err    error
}
