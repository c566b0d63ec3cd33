package models

// RememberDriverKey is the preference key holding the remembered driver name.
const RememberDriverKey = "driver.remember"

// LoginForm is what the driver submits on the login screen.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}
