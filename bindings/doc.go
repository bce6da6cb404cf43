/*
Package bindings holds several ways to solve a common injection problem: two
implementations of the same interface have to exist at once in one bag.
Guice's documentation calls this the robot legs problem, in which a robot has
two equal legs but needs two different sided feet.

Here a reaction.ReactionProcessor has to be able to respond both happily and
sadly, so each Mood tag gets its own processor wired to its own Handler.

	single:     one untagged Handler, so only one kind of processor (SingleReactionModule)
	provider:   tagged providers build each processor by hand (ProviderReactionModule)
	private:    a private module per Mood binds its Handler however it likes (PrivateReactorModule)
	private v2: a private module per Mood, given the Handler as a value (PrivateReactorModuleV2)
*/
package bindings
