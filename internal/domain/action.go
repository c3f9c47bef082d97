package domain

// Action is a discrete user intent consumed by the navigator. The set is
// closed: only types in this package implement it.
type Action interface {
	action()
}

// NavigateToEpicDetail opens the detail page of an epic
type NavigateToEpicDetail struct {
	EpicID uint32
}

// NavigateToStoryDetail opens the detail page of a story within its epic
type NavigateToStoryDetail struct {
	EpicID  uint32
	StoryID uint32
}

// NavigateToPreviousPage returns to the page below the current one
type NavigateToPreviousPage struct{}

// CreateEpic prompts for and stores a new epic
type CreateEpic struct{}

// UpdateEpicStatus prompts for a new epic status
type UpdateEpicStatus struct {
	EpicID uint32
}

// DeleteEpic deletes an epic and all of its stories after confirmation
type DeleteEpic struct {
	EpicID uint32
}

// CreateStory prompts for and stores a new story under an epic
type CreateStory struct {
	EpicID uint32
}

// UpdateStoryStatus prompts for a new story status
type UpdateStoryStatus struct {
	StoryID uint32
}

// DeleteStory removes a story from its epic after confirmation
type DeleteStory struct {
	EpicID  uint32
	StoryID uint32
}

// Exit clears the page stack and ends the session
type Exit struct{}

func (NavigateToEpicDetail) action()   {}
func (NavigateToStoryDetail) action()  {}
func (NavigateToPreviousPage) action() {}
func (CreateEpic) action()             {}
func (UpdateEpicStatus) action()       {}
func (DeleteEpic) action()             {}
func (CreateStory) action()            {}
func (UpdateStoryStatus) action()      {}
func (DeleteStory) action()            {}
func (Exit) action()                   {}
