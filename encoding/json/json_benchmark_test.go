package json

import "testing"

var benchmarkDocument = []byte(`{"name":"Wednesday","items":[{"id":6,"colours":["RED","GREEN"]}],"pairs":[[[1,"a"],[2,"b"]]]}`)

func BenchmarkUnmarshal(b *testing.B) {
	for b.Loop() {
		_ = Unmarshal(benchmarkDocument, &document{})
	}
}

func BenchmarkDecode(b *testing.B) {
	for b.Loop() {
		_ = Decode(benchmarkDocument, &document{})
	}
}

func BenchmarkDecodeFailure(b *testing.B) {
	bad := []byte(`{"items":[{"id":1},{"id":2,"colours":["RED","BLUE"]}]}`)
	for b.Loop() {
		_ = Decode(bad, &document{})
	}
}
