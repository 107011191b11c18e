package repl

import "testing"

// BenchmarkGetSignature benchmarks the Shell.Lookup-backed signature path.
func BenchmarkGetSignature(b *testing.B) {
	root := testRoot()
	paths := []string{"add", "nested.multiply", "path.cat", "greeting"}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = getSignature(root, paths[i%len(paths)])
	}
}

// BenchmarkDetectFunctionCall benchmarks cursor-position call detection.
func BenchmarkDetectFunctionCall(b *testing.B) {
	inputs := []string{"add 1 2", "nested.multiply 5 ", "path.cat "}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		in := inputs[i%len(inputs)]
		_ = detectFunctionCall(in, len(in))
	}
}

// BenchmarkRenderSignatureHint benchmarks hint rendering.
func BenchmarkRenderSignatureHint(b *testing.B) {
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = renderSignatureHint("add(x, y)", []string{"x", "y"}, i%2)
	}
}
