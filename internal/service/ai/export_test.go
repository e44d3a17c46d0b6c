package ai

// ClassifyStatusForTest exposes API error classification for tests.
func ClassifyStatusForTest(status int, err error) error {
	return classifyStatus(status, err)
}

// ClassifyTransportForTest exposes transport error classification for tests.
func ClassifyTransportForTest(err error) error {
	return classifyTransport(err)
}
