package correlator

var ExpectedID = expectedID
