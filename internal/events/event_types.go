package events

// EventType enumerates realtime event identifiers.
type EventType string

const (
	EventTaskCreated    EventType = "task_created"
	EventTaskUpdated    EventType = "task_updated"
	EventTaskDeleted    EventType = "task_deleted"
	EventTaskAIComplete EventType = "task_ai_complete"
)

// Event is an ephemeral notification of a workspace-scoped state change.
// It is delivered at most once to connections live at broadcast time and
// then discarded; never persisted, never retried.
type Event struct {
	Type        EventType   `json:"type"`
	WorkspaceID string      `json:"workspace_id"`
	Task        interface{} `json:"task,omitempty"`
	TaskID      string      `json:"task_id,omitempty"`
}

// TaskCreated builds a task_created event.
func TaskCreated(workspaceID string, task interface{}) Event {
	return Event{Type: EventTaskCreated, WorkspaceID: workspaceID, Task: task}
}

// TaskUpdated builds a task_updated event.
func TaskUpdated(workspaceID string, task interface{}) Event {
	return Event{Type: EventTaskUpdated, WorkspaceID: workspaceID, Task: task}
}

// TaskDeleted builds a task_deleted event.
func TaskDeleted(workspaceID, taskID string) Event {
	return Event{Type: EventTaskDeleted, WorkspaceID: workspaceID, TaskID: taskID}
}

// TaskAIComplete builds a task_ai_complete event.
func TaskAIComplete(workspaceID, taskID string) Event {
	return Event{Type: EventTaskAIComplete, WorkspaceID: workspaceID, TaskID: taskID}
}
