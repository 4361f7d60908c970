package docstore

// ItemRequestOptions are options of a single-item operation, read or write.
// The consistency level setter is public here, per-item operations may
// weaken the account default.
type ItemRequestOptions struct {
	RequestOptions
	sessionToken optional[string]
}

func (o *ItemRequestOptions) SetConsistencyLevel(level ConsistencyLevel) *ItemRequestOptions {
	o.setConsistencyLevel(level)
	return o
}

// SetSessionToken pins the operation to a session, the token is attached
// to the request by the pipeline, see SetSessionToken in this package.
func (o *ItemRequestOptions) SetSessionToken(token string) *ItemRequestOptions {
	o.sessionToken = newOptional(token)
	return o
}

func (o *ItemRequestOptions) SessionToken() (string, bool) {
	return o.sessionToken.get()
}

// QueryRequestOptions are options of a query operation.
type QueryRequestOptions struct {
	RequestOptions
	maxItemCount      optional[int]
	continuationToken optional[string]
}

func (o *QueryRequestOptions) SetConsistencyLevel(level ConsistencyLevel) *QueryRequestOptions {
	o.setConsistencyLevel(level)
	return o
}

// SetMaxItemCount limits the page size of the response.
func (o *QueryRequestOptions) SetMaxItemCount(count int) *QueryRequestOptions {
	o.maxItemCount = newOptional(count)
	return o
}

func (o *QueryRequestOptions) MaxItemCount() (int, bool) {
	return o.maxItemCount.get()
}

// SetContinuationToken resumes a paged query where the previous page ended.
func (o *QueryRequestOptions) SetContinuationToken(token string) *QueryRequestOptions {
	o.continuationToken = newOptional(token)
	return o
}

func (o *QueryRequestOptions) ContinuationToken() (string, bool) {
	return o.continuationToken.get()
}

// BatchRequestOptions are options of a transactional batch.
// There is no consistency level setter, a batch always runs on the
// account default, the slot stays internal.
type BatchRequestOptions struct {
	RequestOptions
}
