package services

import (
	"github.com/john-san/rest-api/entities"
	"github.com/john-san/rest-api/ws"
)

// CourseEvent is the wire shape pushed to catalog feed subscribers.
type CourseEvent struct {
	Event    string `json:"event"`
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
}

// EventDispatcher fans course lifecycle events out to websocket subscribers.
// It satisfies usecases.CatalogNotifier.
type EventDispatcher struct {
	manager *ws.Manager
}

func NewEventDispatcher(manager *ws.Manager) *EventDispatcher {
	return &EventDispatcher{manager: manager}
}

func (d *EventDispatcher) CourseCreated(course *entities.Course) {
	d.publish("course.created", course)
}

func (d *EventDispatcher) CourseUpdated(course *entities.Course) {
	d.publish("course.updated", course)
}

func (d *EventDispatcher) CourseDeleted(course *entities.Course) {
	d.publish("course.deleted", course)
}

func (d *EventDispatcher) publish(event string, course *entities.Course) {
	d.manager.Broadcast(CourseEvent{
		Event:    event,
		CourseID: course.ID,
		Title:    course.Title,
	})
}
