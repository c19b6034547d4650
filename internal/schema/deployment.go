package schema

import (
	"sort"
)

// cpuPattern matches Kubernetes-style CPU quantities: a plain non-negative
// decimal ("2", "1.5") or millicores ("500m").
const cpuPattern = `^[0-9]+(\.[0-9]+)?m?$`

// memoryPattern matches Kubernetes-style memory quantities with an optional
// binary (Ki/Mi/Gi/Ti) or decimal SI (k/M/G/T) unit. Bare numbers are
// allowed.
const memoryPattern = `^[0-9]+(\.[0-9]+)?(Ki|Mi|Gi|Ti|k|M|G|T)?$`

// imageTagPattern matches a container image tag: up to 128 characters from
// the docker reference grammar, starting with a word character.
const imageTagPattern = `^[a-zA-Z0-9_][a-zA-Z0-9._-]{0,127}$`

// Deployment returns the built-in schema for a standard deployment values
// file. Field order here is prompt order.
func Deployment() *Node {
	return Object(
		Field{"replicaCount", UnionRange(1, 10)},
		Field{"image", Object(
			Field{"repository", Enum("nginx", "httpd", "redis")},
			Field{"tag", String().WithPattern(imageTagPattern)},
			Field{"pullPolicy", Enum("Always", "IfNotPresent", "Never")},
		)},
		Field{"service", Object(
			Field{"type", Enum("ClusterIP", "NodePort", "LoadBalancer")},
			Field{"port", Number().InRange(1, 65535)},
		)},
		Field{"resources", Object(
			Field{"cpu", String().WithPattern(cpuPattern)},
			Field{"memory", String().WithPattern(memoryPattern)},
		)},
		Field{"ingress", Object(
			Field{"enabled", Bool()},
			Field{"host", String().WithFormat("hostname_rfc1123")},
		)},
	)
}

// builtins maps schema names accepted by the CLI to their constructors.
// Constructors rather than shared nodes so every caller gets its own tree.
var builtins = map[string]func() *Node{
	"deployment": Deployment,
}

// Lookup returns the named built-in schema.
func Lookup(name string) (*Node, bool) {
	build, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Names returns the available built-in schema names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
