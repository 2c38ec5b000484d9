package constants

const (
	// ContextKeyPrincipal is the gin context key holding the authenticated principal.
	ContextKeyPrincipal = "principal"

	// ContextKeyIdea is the gin context key holding a pre-loaded idea record.
	ContextKeyIdea = "idea"

	// AuthorizationHeader is the header carrying the bearer token.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
)
