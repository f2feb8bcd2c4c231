package searcher

// Hyperparameters for search

const ExploreC = 1.41 // UCB1 exploration constant

const DefaultIterations = 1000
const DefaultRolloutCap = 100
const DefaultMinimaxDepth = 4

// Probability of preferring a safe-destination move during rollouts when no
// capture is available.
const safeMoveBias = 0.7

// Half-width of the uniform noise added to root move scores for tie-breaking.
const noiseSpread = 7.5
