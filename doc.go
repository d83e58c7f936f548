// Package traducteur implements the translation pipeline behind a
// multi-language Discord chat bot.
//
// The pipeline takes an inbound chat message, decides whether it is worth
// translating, detects its language and produces translations into every
// configured target language the message is not already written in.
// Results are served from a bounded TTL cache where possible and from a
// fallback chain of translation providers otherwise. A dual per-user rate
// limit (cooldown plus rolling hourly quota) keeps any single user from
// monopolising upstream API quota.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/Glanita/traducteur"
//	    "github.com/Glanita/traducteur/cache"
//	    "github.com/Glanita/traducteur/provider"
//	)
//
//	func main() {
//	    chain := provider.NewChain(logger,
//	        provider.NewMyMemoryProvider(provider.MyMemoryConfig{}),
//	        provider.NewGoogleProvider(provider.GoogleConfig{}),
//	    )
//
//	    pipe := traducteur.NewPipeline(chain,
//	        traducteur.WithCache(cache.NewLRUCache(2000, 3600)),
//	        traducteur.WithTargets([]string{"en", "fr", "es"}),
//	    )
//
//	    reply := pipe.Process(context.Background(), traducteur.Message{
//	        AuthorID: "42",
//	        Content:  "Bonjour tout le monde, comment allez-vous ?",
//	    })
//	    if reply != nil {
//	        // hand reply to the presentation layer, then:
//	        pipe.Confirm("42", len(reply.Entries))
//	    }
//	}
//
// The discord, web, config and cmd packages wire the pipeline to Discord,
// a keep-alive HTTP endpoint and environment configuration.
package traducteur
