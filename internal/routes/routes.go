package routes

const (
	// Health
	Health = "/health"

	// Building-manager auth endpoints
	ManagerSignUp         = "/api/v1/building-manager/signup"
	ManagerLogin          = "/api/v1/building-manager/login"
	ManagerCurrent        = "/api/v1/building-manager/current"
	ManagerCurrentByEmail = "/api/v1/building-manager/current-by-email"
	ManagerSignOut        = "/api/v1/building-manager/signout"
	ManagerSignUpGoogle   = "/api/v1/building-manager/signup-google"

	// Unit listings
	Units          = "/api/v1/units"
	ApartmentUnits = "/api/v1/apartment-units"
)
