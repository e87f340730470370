package model

// Admin is a row in the `admins` table.  Credentials are seed data:
// accounts are provisioned at startup, never through the application's
// own flows.  Only a bcrypt hash of the password is stored.
//
// Fields:
//  Username     – primary key, unique login name.
//  PasswordHash – bcrypt hash of the password.
type Admin struct {
	Username     string // admins.username
	PasswordHash string // admins.password_hash
}
