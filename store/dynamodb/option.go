package dynamodb

// Option configures the Store.
type Option func(*Store)

// WithConsistentRead enables strongly consistent reads for GetByID and ListPage.
// Enabled by default so a message is readable right after it was created.
func WithConsistentRead(enabled bool) Option {
	return func(s *Store) {
		s.consistentRead = enabled
	}
}

// WithEndpoint overrides the DynamoDB endpoint, for example to use DynamoDB Local or
// localstack. Only used by Open.
func WithEndpoint(url string) Option {
	return func(s *Store) {
		s.endpoint = url
	}
}

// WithRegion overrides the region resolved from the environment. Only used by Open.
func WithRegion(region string) Option {
	return func(s *Store) {
		s.region = region
	}
}
