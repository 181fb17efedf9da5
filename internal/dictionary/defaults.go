package dictionary

// defaultEntries is the built-in table of well-known web3 error patterns.
// Keys are matched case-insensitively after normalization; more specific
// (longer) phrases are preferred automatically, so generic entries like
// "EXPIRED" can safely coexist with "UniswapV2Router: EXPIRED".
var defaultEntries = []Entry{
	// EIP-1193 provider error codes.
	{"4001", "You rejected the request in your wallet."},
	{"4100", "Your wallet has not authorized this account for the request."},
	{"4200", "Your wallet does not support this method."},
	{"4900", "Your wallet is disconnected. Reconnect and try again."},
	{"4901", "Your wallet is not connected to the requested network."},
	{"4902", "The requested network has not been added to your wallet."},

	// JSON-RPC error codes.
	{"-32000", "The node rejected the transaction. It may be underfunded or malformed."},
	{"-32002", "A request is already pending in your wallet. Open your wallet to continue."},
	{"-32003", "The transaction was rejected by the node."},
	{"-32005", "The RPC provider is rate limiting requests. Wait a moment and try again."},
	{"-32009", "Too many requests to the RPC provider. Try again shortly."},
	{"-32015", "The transaction could not be executed by the node."},
	{"-32016", "The RPC provider is rate limiting requests. Wait a moment and try again."},
	{"-32600", "The request sent to the node was invalid."},
	{"-32601", "The node does not support the requested method."},
	{"-32602", "The request sent to the node had invalid parameters."},
	{"-32603", "The node hit an internal error while handling the request."},
	{"-32700", "The node could not parse the request."},

	// Node / txpool strings (geth and friends).
	{"insufficient funds for gas * price + value", "You don't have enough funds to cover this transaction plus its gas fee."},
	{"insufficient funds for transfer", "You don't have enough funds to cover this transfer."},
	{"insufficient funds", "You don't have enough funds to complete this transaction."},
	{"INSUFFICIENT_FUNDS", "You don't have enough funds to complete this transaction."},
	{"nonce too low", "This transaction was already processed or replaced. Refresh and try again."},
	{"nonce too high", "Your wallet's transaction counter is out of sync. Reset your account activity and try again."},
	{"replacement transaction underpriced", "A pending transaction is blocking this one. Speed it up or increase the gas price."},
	{"transaction underpriced", "The gas price is too low for the network right now. Increase it and try again."},
	{"already known", "This exact transaction is already pending. Wait for it to confirm."},
	{"known transaction", "This exact transaction is already pending. Wait for it to confirm."},
	{"gas required exceeds allowance", "The gas limit is too low for this transaction."},
	{"intrinsic gas too low", "The gas limit is below the minimum this transaction needs."},
	{"max fee per gas less than block base fee", "Your maximum gas fee is below the current network base fee. Increase it and try again."},
	{"exceeds block gas limit", "This transaction needs more gas than a block allows."},
	{"execution reverted", "The transaction was rejected by the smart contract."},
	{"out of gas", "The transaction ran out of gas before completing. Increase the gas limit."},
	{"tx fee exceeds the configured cap", "The transaction fee is above the node's safety cap. Lower the gas settings."},
	{"oversized data", "The transaction data is too large for the network."},

	// Client-library phrases (ethers/viem style).
	{"user rejected the request", "You rejected the request in your wallet."},
	{"user rejected transaction", "You rejected the transaction in your wallet."},
	{"ACTION_REJECTED", "You rejected the request in your wallet."},
	{"UNPREDICTABLE_GAS_LIMIT", "The network could not estimate gas for this transaction. It would likely fail on-chain."},
	{"CALL_EXCEPTION", "The smart contract rejected this call."},
	{"NETWORK_ERROR", "A network problem interrupted the request. Check your connection and try again."},
	{"TIMEOUT", "The network request timed out. Try again."},
	{"SERVER_ERROR", "The RPC provider returned an error. Try again shortly."},
	{"could not detect network", "The app could not reach the network. Check your connection or RPC settings."},
	{"missing revert data", "The transaction would fail on-chain. Check the amounts and try again."},

	// Uniswap V2 router and pair revert codes.
	{"UniswapV2Router: EXPIRED", "The swap deadline passed before the transaction confirmed. Try again."},
	{"UniswapV2Router: INSUFFICIENT_OUTPUT_AMOUNT", "Price moved beyond your slippage tolerance. Increase slippage or try a smaller amount."},
	{"UniswapV2Router: INSUFFICIENT_A_AMOUNT", "Price moved beyond your slippage tolerance for the first token."},
	{"UniswapV2Router: INSUFFICIENT_B_AMOUNT", "Price moved beyond your slippage tolerance for the second token."},
	{"UniswapV2Router: EXCESSIVE_INPUT_AMOUNT", "The swap would need more input tokens than your maximum. Increase slippage or reduce the amount."},
	{"UniswapV2: INSUFFICIENT_OUTPUT_AMOUNT", "Price moved beyond your slippage tolerance. Increase slippage or try a smaller amount."},
	{"UniswapV2: INSUFFICIENT_INPUT_AMOUNT", "The swap input amount is too small."},
	{"UniswapV2: INSUFFICIENT_LIQUIDITY", "The pool doesn't have enough liquidity for this trade size."},
	{"UniswapV2: LOCKED", "The pool is busy with another transaction. Try again."},
	{"UniswapV2: K", "The pool rejected the swap due to a balance check. Try again with different amounts."},
	{"INSUFFICIENT_OUTPUT_AMOUNT", "Price moved beyond your slippage tolerance. Increase slippage or try a smaller amount."},
	{"INSUFFICIENT_INPUT_AMOUNT", "The swap input amount is too small."},
	{"INSUFFICIENT_LIQUIDITY", "The pool doesn't have enough liquidity for this trade size."},
	{"EXPIRED", "The transaction deadline passed before it confirmed. Try again."},

	// Uniswap V3 / universal router.
	{"Too little received", "Price moved beyond your slippage tolerance. Increase slippage or try a smaller amount."},
	{"Too much requested", "The swap would need more input tokens than your maximum allows."},
	{"STF", "A token transfer failed. Check your balance and token approval."},
	{"Transaction too old", "The swap deadline passed before the transaction confirmed. Try again."},

	// ERC-20 / helper revert strings.
	{"TransferHelper::transferFrom: transferFrom failed", "A token transfer failed. Check your balance and token approval."},
	{"TransferHelper: TRANSFER_FROM_FAILED", "A token transfer failed. Check your balance and token approval."},
	{"ERC20: transfer amount exceeds balance", "You don't have enough of this token."},
	{"ERC20: transfer amount exceeds allowance", "The app is not approved to spend this much of the token. Increase the approval."},
	{"ERC20: insufficient allowance", "The app is not approved to spend this much of the token. Increase the approval."},
	{"ERC20: approve from the zero address", "The token approval came from an invalid address."},
	{"ERC20: transfer to the zero address", "The transfer target is an invalid address."},
	{"SafeERC20: low-level call failed", "A token operation failed. The token contract may be non-standard."},
	{"Ownable: caller is not the owner", "Only the contract owner can perform this action."},
	{"AccessControl: account is missing role", "Your account doesn't have permission for this action."},
	{"Pausable: paused", "The contract is currently paused. Try again later."},
	{"ReentrancyGuard: reentrant call", "The contract blocked a re-entrant call. Try again."},

	// Wallet / aggregator phrases.
	{"slippage", "Price moved beyond your slippage tolerance. Increase slippage or try a smaller amount."},
	{"price impact too high", "This trade would move the price too much. Reduce the amount."},
	{"deadline exceeded", "The transaction deadline passed before it confirmed. Try again."},
	{"Return amount is not enough", "Price moved beyond your slippage tolerance. Increase slippage or try a smaller amount."},
	{"MEV", "The transaction may have been dropped by MEV protection. Try again."},
}

// Default returns a fresh copy of the built-in dictionary. Callers extend it
// by merging (Default().Merge(custom)); there is no shared mutable table.
func Default() *Dictionary {
	return FromEntries(defaultEntries)
}
