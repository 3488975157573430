package message

import "golang.org/x/text/language"

// Message codes shared between the user service and its validation rules.
const (
	CodeUserIDDoesNotExist    = "userInfo.id.doesNotExist"
	CodeUsernameAlreadyExists = "userInfo.username.alreadyExists"
	CodeUsernameDoesNotExist  = "userInfo.username.doesNotExist"
	CodeStatusNotAllowed      = "userinfo.status.notAllowed"
	CodeUsernameBlank         = "userInfo.username.blank"
	CodePasswordBlank         = "userInfo.password.blank"
	CodePasswordSize          = "userInfo.password.size"
	CodePasswordPattern       = "userInfo.password.pattern"
	CodeFirstNameBlank        = "userInfo.firstName.blank"
	CodeStatusBlank           = "userInfo.status.blank"
)

// Ukrainian is first: it is the system's default locale.
var Ukrainian = Catalog{
	Tag: language.Ukrainian,
	Messages: map[string]string{
		CodeUserIDDoesNotExist:    "користувача з таким id не існує",
		CodeUsernameAlreadyExists: "користувач з іменем %s вже існує",
		CodeUsernameDoesNotExist:  "користувача з іменем %s не існує",
		CodeStatusNotAllowed:      "статус %s не дозволено, допустимі статуси: %v",
		CodeUsernameBlank:         "ім'я користувача не може бути порожнім",
		CodePasswordBlank:         "пароль не може бути порожнім",
		CodePasswordSize:          "пароль має містити щонайменше 8 символів",
		CodePasswordPattern:       "пароль має містити малу літеру, велику літеру та цифру",
		CodeFirstNameBlank:        "ім'я не може бути порожнім",
		CodeStatusBlank:           "статус не може бути порожнім",
	},
}

var English = Catalog{
	Tag: language.English,
	Messages: map[string]string{
		CodeUserIDDoesNotExist:    "user with this id does not exist",
		CodeUsernameAlreadyExists: "user with username %s already exists",
		CodeUsernameDoesNotExist:  "user with username %s does not exist",
		CodeStatusNotAllowed:      "status %s is not allowed, allowed statuses: %v",
		CodeUsernameBlank:         "username must not be blank",
		CodePasswordBlank:         "password must not be blank",
		CodePasswordSize:          "password must be at least 8 characters long",
		CodePasswordPattern:       "password must contain a lower-case letter, an upper-case letter and a digit",
		CodeFirstNameBlank:        "first name must not be blank",
		CodeStatusBlank:           "status must not be blank",
	},
}

// Default returns the service with the built-in catalogs, Ukrainian first.
func Default() *Service { return NewService(Ukrainian, English) }
