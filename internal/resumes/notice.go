package resumes

import "resume-builder/resume/model"

// NoticeLevel classifies a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short message shown to the user after an operation.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

var (
	noticeSaved      = Notice{Level: NoticeSuccess, Message: "Resume saved"}
	noticeLoaded     = Notice{Level: NoticeSuccess, Message: "Resume loaded"}
	noticeNotFound   = Notice{Level: NoticeInfo, Message: "No saved resume found"}
	noticeLoadFailed = Notice{Level: NoticeError, Message: "Failed to load saved resume"}
)

func templateChanged(id model.TemplateID) Notice {
	return Notice{Level: NoticeSuccess, Message: "Template changed to " + string(id)}
}
