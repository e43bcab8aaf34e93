/*
Package hypergraph constructs graph API clients.

	api, err := hypergraph.New(&graph.Config{
		AccessToken: os.Getenv("GRAPH_TOKEN"),
	})
	if err != nil {
		log.Fatal(err)
	}

	me, err := api.Fetch(ctx, "me", graph.Options{"fields": "id,name"})

Host defaults to graph.DefaultHost and may be given with or without a scheme.
Every request goes over HTTPS with certificate verification. Setting
Config.InsecureSkipVerify is rejected with graph.ErrInsecureOnlyInDev unless
HYPERGRAPH_DEV_MODE is "true" or "1".
*/
package hypergraph
