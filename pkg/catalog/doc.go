// Package catalog resolves emote names to image bytes through the Emote
// Collector API.
//
// A lookup is two requests: the emote record at {base}/emote/{name}, then the
// image it points to. Image bytes are cached by lower-cased name so repeated
// marks with the same emote stay offline.
//
//	c := catalog.NewClient(catalog.DefaultBaseURL,
//	    catalog.WithCache(cache.NewNullCache(), 24*time.Hour))
//	blob, err := c.Image(ctx, "Think")
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // exit 2
//	}
//
// Transport failures and 5xx responses are retried with exponential backoff.
// A 404 maps to NOT_FOUND and a 429 to RATE_LIMITED; neither is retried.
package catalog
