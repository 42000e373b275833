package telegraf

// Metric is the capability that turns an application type into a wire point.
// Implement it directly, derive it from struct tags with MarshalPoint, or
// pass Point values themselves, which satisfy it trivially.
type Metric interface {
	ToPoint() Point
}
