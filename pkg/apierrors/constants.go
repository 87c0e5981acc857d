package apierrors

const (
	MsgInvalidSignupPayload = "invalidSignupPayload"
	MsgInvalidLoginPayload  = "invalidLoginPayload"
	MsgUserAlreadyExists    = "userAlreadyExists"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgFailSignup           = "failSignup"
	MsgFailLogin            = "failLogin"

	MsgMissingToken = "missingToken"
	MsgInvalidToken = "invalidToken"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailListTask       = "errorListTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidSubtaskID      = "invalidSubtaskID"
	MsgInvalidSubtaskPayload = "invalidSubtaskPayload"
	MsgSubtaskNotFound       = "subtaskNotFound"
	MsgFailCreateSubtask     = "failCreateSubtask"
	MsgFailListSubtasks      = "failListSubtasks"
	MsgFailUpdateSubtask     = "failUpdateSubtask"
	MsgFailDeleteSubtask     = "failDeleteSubtask"
)
