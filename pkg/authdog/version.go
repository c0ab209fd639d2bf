package authdog

// Version is the SDK version reported in the User-Agent header.
var Version = "0.1.0"

const productName = "authdog-go-sdk"

// DefaultUserAgent returns the product identifier sent with every request.
func DefaultUserAgent() string {
	return productName + "/" + Version
}
