package user

import "errors"

var (
	ErrInvalidToken           = errors.New("invalid or missing access token")
	ErrTenantClaimMissing     = errors.New("tenant_id claim is missing or invalid")
	ErrManagerAccessRequired  = errors.New("manager access required")
	ErrOwnerAccessRequired    = errors.New("owner access required")
	ErrInsufficientPermission = errors.New("insufficient permission")
)
