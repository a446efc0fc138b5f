package constant

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const LoginAttemptsKeyPrefix = "login_attempts:"
