package message

// ContainsKey reports that a map lacks a key.
func ContainsKey(s Subject, keyName string, key any) *Builder {
	return operand(s, "must contain the key", "", keyName, "", key)
}

// DoesNotContainKey reports that a map holds an unwanted key.
func DoesNotContainKey(s Subject, keyName string, key any) *Builder {
	return operand(s, "may not contain the key", "", keyName, "", key)
}
