package main

// @title Easy Bioclim API
// @version 1.0
// @description Web API for obtaining WorldClim bioclimatic variables (BIO1..BIO19) for named geographic points of interest. Powered by worldclim.org.
// @BasePath /
