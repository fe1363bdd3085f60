// Package metrics holds the prometheus collectors of the node components.
package metrics

const namespace = "evmnode"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
