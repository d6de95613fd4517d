package connection

// resetShared forgets the process-wide instance so each test starts Uninitialized
func resetShared() {
	process = Holder{}
}
