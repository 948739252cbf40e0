package accounts

// Client facing messages
const (
	MsgUserExists         = "User exist!"
	MsgPasswordTooShort   = "The password length must be at least 12 chars!"
	MsgPasswordBreached   = "The password is in the hacker's database!"
	MsgSamePassword       = "The passwords must be different!"
	MsgPasswordUpdated    = "The password has been updated successfully"
	MsgDeleted            = "Deleted successfully!"
	MsgUserNotFound       = "User not found!"
	MsgCantRemoveAdmin    = "Can't remove ADMINISTRATOR role!"
	MsgRoleNotFound       = "Role not found!"
	MsgUserHasNoRole      = "The user does not have a role!"
	MsgUserNeedsRole      = "The user must have at least one role!"
	MsgUserHasRole        = "The user has the role already!"
	MsgInvalidRoleCombine = "The user cannot combine administrative and business roles!"
	MsgCantLockAdmin      = "Can't lock the ADMINISTRATOR!"
	MsgInvalidUserEmail   = "Invalid user email given: '%s'!"

	MsgNotAuthenticated   = "Not Authenticated"
	MsgInvalidCredentials = "Invalid Credentials"
	MsgAccountLocked      = "User account is locked"
	MsgChangeBreached     = MsgPasswordBreached + " Please change!"
	MsgAccessDenied       = "Access Denied!"
)
