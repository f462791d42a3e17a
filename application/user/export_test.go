package user

var DummyPasswordHash = dummyPasswordHash
