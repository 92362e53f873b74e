// README: Back-office user account; roles gate the presentation layer.
package user

import "time"

type Role string

const (
    RoleManager    Role = "manager"
    RoleDispatcher Role = "dispatcher"
    RoleSafety     Role = "safety"
    RoleAnalyst    Role = "analyst"
)

func ValidRole(r Role) bool {
    switch r {
    case RoleManager, RoleDispatcher, RoleSafety, RoleAnalyst:
        return true
    }
    return false
}

type User struct {
    ID           int64
    Name         string
    Email        string
    PasswordHash string
    Role         Role
    CreatedAt    time.Time
}
