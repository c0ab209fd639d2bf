// Package authdog is a client for the Authdog user-info endpoint.
//
// A Client owns one HTTP transport for its lifetime. GetUserInfo issues a
// single GET /v1/userinfo per call and classifies failures as either an
// *AuthenticationError (the token was rejected) or an *APIError (everything
// else). Both match ErrAuthdog under errors.Is.
//
//	err := authdog.WithClient("https://api.authdog.com", func(c *authdog.Client) error {
//		info, err := c.GetUserInfo(ctx, token)
//		if err != nil {
//			return err
//		}
//		fmt.Println(info["user"])
//		return nil
//	})
package authdog
