// Package v1 exposes version 1 of the IDEA REST API over gin.
package v1

// BasePath is the route prefix shared by every version 1 endpoint.
const BasePath = "/api/v1/idea"
