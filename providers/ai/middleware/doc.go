// Package middleware wraps an [ai.Provider] in a chain of request
// interceptors. [Chain] applies them outermost first. [Retry], [Timeout] and
// [Logging] cover the transport; [Cost] prices every response into a
// [cost.Tracker].
//
//	provider := middleware.Chain(gemini.New(),
//	    middleware.Logging(),
//	    middleware.Cost(cost.NewTracker(nil)),
//	    middleware.Retry(middleware.RetryConfig{MaxRetries: 2}),
//	    middleware.Timeout(90*time.Second),
//	)
package middleware
